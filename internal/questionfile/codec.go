package questionfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/annotiz/internal/question"
)

// Format is the on-disk encoding of a question file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from the file extension. Anything that is not
// YAML is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// record is one question as stored on disk. Absent annotations are written as
// explicit nulls.
type record struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	Answer        string   `json:"answer" yaml:"answer"`
	IsHigherOrder *bool    `json:"is_higher_order" yaml:"is_higher_order"`
	HumanAnswer   *string  `json:"human_answer" yaml:"human_answer"`
}

func toRecords(qs []question.Question) []record {
	out := make([]record, len(qs))
	for i, q := range qs {
		out[i] = record{
			Question:      q.Prompt,
			Options:       q.Options,
			Answer:        q.ReferenceAnswer,
			IsHigherOrder: q.Classification,
			HumanAnswer:   q.HumanAnswer,
		}
	}
	return out
}

func fromRecords(rs []record) []question.Question {
	out := make([]question.Question, len(rs))
	for i, r := range rs {
		out[i] = question.Question{
			Prompt:          r.Question,
			Options:         r.Options,
			ReferenceAnswer: r.Answer,
			Classification:  r.IsHigherOrder,
			HumanAnswer:     r.HumanAnswer,
		}
	}
	return out
}

// encode renders records in a stable, diff-friendly layout.
func encode(format Format, rs []record) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rs); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// decodeGeneric parses data into plain values for schema validation.
func decodeGeneric(format Format, data []byte) (any, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}
	return doc, nil
}

// decodeRecords parses data strictly: unknown fields and trailing documents
// are rejected.
func decodeRecords(format Format, data []byte) ([]record, error) {
	var rs []record
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&rs); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		if err := decoder.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
			}
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&rs); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if err := decoder.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return nil, fmt.Errorf("parse json: multiple documents are not supported")
			}
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}
	return rs, nil
}
