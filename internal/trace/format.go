package trace

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatText   Format = iota // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// DetectFormat picks a format from an output path: *.ndjson and *.json
// stream NDJSON, everything else text.
func DetectFormat(path string) Format {
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".json") {
		return FormatNDJSON
	}
	return FormatText
}

// FormatEvent formats an event according to the specified format.
func FormatEvent(ev Event, format Format) []byte {
	switch format {
	case FormatNDJSON:
		return formatNDJSON(ev)
	default:
		return formatText(ev)
	}
}

// formatNDJSON formats an event as newline-delimited JSON.
func formatNDJSON(ev Event) []byte {
	type jsonEvent struct {
		Time   string `json:"time"`
		Seq    uint64 `json:"seq"`
		Kind   string `json:"kind"`
		Site   string `json:"site"`
		Worker *int   `json:"worker,omitempty"`
	}

	j := jsonEvent{
		Time: ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:  ev.Seq,
		Kind: ev.Kind.String(),
		Site: ev.Site,
	}
	// Воркер 0 — валидный ординал; отсутствие воркера кодируем как < 0.
	if ev.Worker >= 0 {
		j.Worker = &ev.Worker
	}

	data, _ := json.Marshal(j)
	data = append(data, '\n')
	return data
}

// formatText formats an event as one human-readable line.
// Format: [seq] marker site (worker N)
func formatText(ev Event) []byte {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%6d] ", ev.Seq))

	// Первый визит помечаем плюсом, повтор — точкой.
	switch ev.Kind {
	case KindFirst:
		sb.WriteString("+ ")
	case KindRepeat:
		sb.WriteString("· ")
	default:
		sb.WriteString("? ")
	}

	sb.WriteString(ev.Site)

	if ev.Worker >= 0 {
		sb.WriteString(fmt.Sprintf(" (worker %d)", ev.Worker))
	}

	sb.WriteString("\n")
	return []byte(sb.String())
}
