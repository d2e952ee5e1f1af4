package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	veximoji "github.com/roz0n/Veximoji"
)

// browseItem adapts a list row to the bubbles list delegate.
type browseItem row

func (i browseItem) Title() string       { return fmt.Sprintf("%s  %s", i.Flag, i.Code) }
func (i browseItem) Description() string { return i.Kind }
func (i browseItem) FilterValue() string { return i.Code + " " + i.Kind }

// browseModel is the interactive flag browser.
type browseModel struct {
	list list.Model
}

func newBrowseModel(rows []row) browseModel {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = browseItem(r)
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "veximoji"
	l.SetStatusBarItemName("flag", "flags")

	return browseModel{list: l}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		// "q" quits unless the filter input is capturing keys.
		if msg.String() == "ctrl+c" || (msg.String() == "q" && !m.list.SettingFilter()) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return m.list.View()
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse all flags interactively",
	Long: `Open an interactive, filterable list of every flag this build can
compose. Type / to filter, enter to confirm, q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := collectRows(newComposer(), veximoji.Kinds())
		p := tea.NewProgram(newBrowseModel(rows), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
