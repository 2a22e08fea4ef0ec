package ui

import (
	"errors"

	"github.com/Mshel/hunthat/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const historyPageSize = 10

var errNoJournal = errors.New("session journal is disabled")

type historyLoadedMsg struct {
	records []game.SessionRecord
	total   int
	err     error
}

// HistoryModel lists the most recent finished sessions from the journal.
type HistoryModel struct {
	journal *game.SessionJournal
	records []game.SessionRecord
	total   int
	err     error
	width   int
	height  int
}

func NewHistoryModel(journal *game.SessionJournal, w, h int) HistoryModel {
	return HistoryModel{journal: journal, width: w, height: h}
}

func (m HistoryModel) Init() tea.Cmd {
	journal := m.journal
	return func() tea.Msg {
		if journal == nil {
			return historyLoadedMsg{err: errNoJournal}
		}
		records, err := journal.Recent(historyPageSize, 0)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		total, err := journal.Count()
		return historyLoadedMsg{records: records, total: total, err: err}
	}
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case historyLoadedMsg:
		if msg.err != nil {
			log.Error("Could not load session history", "error", msg.err)
		}
		m.records = msg.records
		m.total = msg.total
		m.err = msg.err
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return BackToMenuMsg{} }
		}
	}
	return m, nil
}

func (m HistoryModel) View() string {
	return RenderHistoryScreen(m.records, m.total, m.err, m.width, m.height)
}
