package mcaddon

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Severity expresses how strictly a check is enforced.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// DetectDuplicateKeys walks raw JSON and reports every object key that
// appears more than once within the same object. The engine itself treats
// repeated keys as last-write-wins, so duplicates are not fatal by default,
// but authoring tools surface them. maxIssues <= 0 means unlimited.
func DetectDuplicateKeys(data []byte, maxIssues int) (Issues, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	s := &dupScanner{dec: dec, max: maxIssues}
	if err := s.value(""); err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}
	return s.issues, nil
}

type dupScanner struct {
	dec    *json.Decoder
	issues Issues
	max    int
}

func (s *dupScanner) full() bool { return s.max > 0 && len(s.issues) >= s.max }

// value consumes one JSON value rooted at path.
func (s *dupScanner) value(path string) error {
	tok, err := s.dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil // scalar
	}
	switch delim {
	case '{':
		seen := map[string]bool{}
		for s.dec.More() {
			keyTok, err := s.dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			if seen[key] && !s.full() {
				s.issues = AppendIssues(s.issues, Issue{
					Path:    path + "/" + key,
					Code:    CodeDuplicateKey,
					Message: fmt.Sprintf("duplicate key %q", key),
				})
			}
			seen[key] = true
			if err := s.value(path + "/" + key); err != nil {
				return err
			}
		}
		_, err = s.dec.Token() // closing '}'
		return err
	case '[':
		for i := 0; s.dec.More(); i++ {
			if err := s.value(path + "/" + strconv.Itoa(i)); err != nil {
				return err
			}
		}
		_, err = s.dec.Token() // closing ']'
		return err
	}
	return nil
}
