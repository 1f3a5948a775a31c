package domain

import (
	"encoding/json"
	"fmt"
)

// MetadataKind tags the shape held by TransactionMetadata
type MetadataKind string

const (
	MetadataKindNone  MetadataKind = ""
	MetadataKindError MetadataKind = "error"
	MetadataKindLogs  MetadataKind = "logs"
)

// TransactionMetadata is either the ledger error of a failed transaction
// or the leading log lines of a confirmed one. It serializes as
// {"error": ...} or {"logMessages": [...]}.
type TransactionMetadata struct {
	Kind        MetadataKind
	Error       json.RawMessage
	LogMessages []string
}

// NewErrorMetadata captures an on-chain error payload
func NewErrorMetadata(payload any) (TransactionMetadata, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return TransactionMetadata{}, fmt.Errorf("failed to encode ledger error: %w", err)
	}
	return TransactionMetadata{Kind: MetadataKindError, Error: raw}, nil
}

// NewLogMetadata keeps at most MaxLogMessages lines. No lines yields empty metadata.
func NewLogMetadata(lines []string) TransactionMetadata {
	if len(lines) == 0 {
		return TransactionMetadata{}
	}
	if len(lines) > MaxLogMessages {
		lines = lines[:MaxLogMessages]
	}
	kept := make([]string, len(lines))
	copy(kept, lines)
	return TransactionMetadata{Kind: MetadataKindLogs, LogMessages: kept}
}

type errorMetadataJSON struct {
	Error json.RawMessage `json:"error"`
}

type logMetadataJSON struct {
	LogMessages []string `json:"logMessages"`
}

func (m TransactionMetadata) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MetadataKindError:
		payload := m.Error
		if len(payload) == 0 {
			payload = json.RawMessage("null")
		}
		return json.Marshal(errorMetadataJSON{Error: payload})
	case MetadataKindLogs:
		return json.Marshal(logMetadataJSON{LogMessages: m.LogMessages})
	case MetadataKindNone:
		return []byte("{}"), nil
	default:
		return nil, fmt.Errorf("unknown metadata kind %q", m.Kind)
	}
}

func (m *TransactionMetadata) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*m = TransactionMetadata{}
	if raw, ok := fields["error"]; ok {
		m.Kind = MetadataKindError
		m.Error = raw
		return nil
	}
	if raw, ok := fields["logMessages"]; ok {
		m.Kind = MetadataKindLogs
		return json.Unmarshal(raw, &m.LogMessages)
	}
	return nil
}
