package common

import (
	"bufio"
	"io"
	"strings"
)

// SlurpLine drains in line by line until EOF and concatenates everything
// read into a single string. A buffered reader keeps this linear in the
// input size regardless of how the caller's io.Reader chunks its data.
func SlurpLine(in io.Reader) (string, error) {
	var out strings.Builder
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		out.WriteString(line)
		if err != nil {
			if err == io.EOF {
				return out.String(), nil
			}
			return "", err
		}
	}
}
