package spectrum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadValues parses one floating-point literal per line from r.
//
// Surrounding whitespace is ignored and blank lines are skipped. The first
// line that does not parse stops the read with a *ParseError.
func ReadValues(r io.Reader) ([]float64, error) {
	return readValues(r, "")
}

// ReadFile reads all values from the text file at path. The file is closed
// before ReadFile returns.
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spectrum: open %s: %w", path, err)
	}
	defer f.Close()

	return readValues(f, path)
}

// LoadDistribution reads paired wavelength and value files. Lines are
// matched by index.
func LoadDistribution(wavelengthPath, valuePath string) (Distribution, error) {
	wl, err := ReadFile(wavelengthPath)
	if err != nil {
		return Distribution{}, err
	}
	values, err := ReadFile(valuePath)
	if err != nil {
		return Distribution{}, err
	}
	d, err := NewDistribution(wl, values)
	if err != nil {
		return Distribution{}, fmt.Errorf("%w (%s: %d, %s: %d)", err, wavelengthPath, len(wl), valuePath, len(values))
	}
	return d, nil
}

func readValues(r io.Reader, source string) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		// Out-of-range literals saturate to +-Inf or 0 instead of failing.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return nil, &ParseError{Source: source, Line: line, Text: text, Err: err}
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		if source != "" {
			return nil, fmt.Errorf("spectrum: read %s: %w", source, err)
		}
		return nil, fmt.Errorf("spectrum: read: %w", err)
	}
	return out, nil
}
