package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts point indexes into random readable names. It leaks memory
// but generates the names lazily, so it's not a problem unless you're
// actually using it. "Swift Ocelot" is a lot easier to follow through a hull
// dump than 48213.

var (
	mu   sync.Mutex
	memo map[int]string
)

func init() {
	memo = make(map[int]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same point between runs.
	petname.NonDeterministicMode()
}

// Name for a point index. Negative indexes are the "no point" sentinel.
func Name(i int) string {
	if i < 0 {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[i]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[i] = r
	return r
}
