package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// RenderEntries writes a table of entry states to w
func RenderEntries(w io.Writer, statuses []EntryStatus) error {
	data := pterm.TableData{{"#", "Path", "Kind", "State", "Size"}}
	for i, s := range statuses {
		kind := "file"
		if s.Marker {
			kind = "marker"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Entry.String(),
			kind,
			stateLabel(s.State),
			strconv.FormatInt(s.Size, 10),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err = fmt.Fprintln(w, table)
	return err
}

// Summarize counts entries per state
func Summarize(statuses []EntryStatus) map[EntryState]int {
	counts := map[EntryState]int{
		StateMissing: 0,
		StateEmpty:   0,
		StatePresent: 0,
	}
	for _, s := range statuses {
		counts[s.State]++
	}
	return counts
}

func stateLabel(state EntryState) string {
	switch state {
	case StatePresent:
		return color.GreenString(string(state))
	case StateEmpty:
		return color.YellowString(string(state))
	default:
		return color.RedString(string(state))
	}
}
