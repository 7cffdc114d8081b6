package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y" into a flat coordinate
// buffer. Blank lines and lines starting with # are ignored.
func readCoords(in io.Reader) ([]float64, error) {
	coords := []float64{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		x, y, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		coords = append(coords, x, y)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return coords, nil
}

func parsePoint(line string) (x, y float64, err error) {
	// Allow "x,y" as well as "x y"
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("expected two coordinates, got %q", line)
	}
	if x, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, 0, errors.Wrap(err, "parsing x")
	}
	if y, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return 0, 0, errors.Wrap(err, "parsing y")
	}
	return x, y, nil
}
