// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Result is a title and its samples in measurement order.
type Result struct {
	Title   string
	Samples []uint64
}

// WriteResult writes title and samples to path: the title on line 1, then
// one decimal sample per line. Missing parent directories are created.
//
// The artifact is written to a temporary file in the same directory and
// renamed into place, so on error nothing is left at path and no partial
// file remains.
func WriteResult(path, title string, samples []uint64) (err error) {
	if strings.ContainsAny(title, "\r\n") {
		return fmt.Errorf("bench: title %q spans lines", title)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	w.WriteString(title)
	w.WriteByte('\n')
	var num [20]byte
	for _, s := range samples {
		w.Write(strconv.AppendUint(num[:0], s, 10))
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	return nil
}

// ErrMalformed is returned by ReadResult for artifacts that do not follow
// the title-then-samples layout.
var ErrMalformed = errors.New("bench: malformed result artifact")

// ReadResult parses an artifact written by WriteResult.
func ReadResult(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("bench: read %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Result{}, fmt.Errorf("bench: read %s: %w", path, err)
		}
		return Result{}, fmt.Errorf("%w: %s is empty", ErrMalformed, path)
	}
	r := Result{Title: sc.Text()}
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %s:%d: %v", ErrMalformed, path, line, err)
		}
		r.Samples = append(r.Samples, v)
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("bench: read %s: %w", path, err)
	}
	return r, nil
}
