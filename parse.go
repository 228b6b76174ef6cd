package pagesim

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseReferences reads a whitespace separated list of
// integer page numbers, such as "7 0 1 2 0 3".
// Tokens that are not integers fail with [ErrMalformedReference];
// input without any tokens fails with [ErrInvalidConfiguration].
func ParseReferences(reader io.Reader) ([]int, error) {
	var (
		scanner  = bufio.NewScanner(reader)
		sequence []int
	)
	scanner.Split(bufio.ScanWords)
	for position := 0; scanner.Scan(); position++ {
		token := scanner.Text()
		page, err := strconv.Atoi(token)
		if err != nil {
			return nil, malformedReferenceError(position, token, err)
		}
		sequence = append(sequence, page)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(sequence) == 0 {
		return nil, emptySequenceError()
	}
	return sequence, nil
}

// ParseReferenceString is [ParseReferences] for in-memory text.
func ParseReferenceString(text string) ([]int, error) {
	return ParseReferences(strings.NewReader(text))
}
