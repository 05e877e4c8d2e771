// internal/tui/menu.go
//
// Arrow-key menu boxes for the interactive screens.

package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/eiannone/keyboard"
)

type MenuItem struct {
	Label string
	Value string
}

type Menu struct {
	Title    string
	Header   string // drawn above the box, e.g. the banner
	Items    []MenuItem
	Selected int
	Width    int
}

func NewMenu(title string, items []MenuItem) *Menu {
	return &Menu{
		Title:    title,
		Items:    items,
		Selected: 0,
		Width:    46,
	}
}

func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

func (m *Menu) centerText(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width-4 {
		return string([]rune(text)[:width-4])
	}
	padding := (width - n - 4) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-n-padding-4)
}

func (m *Menu) render() {
	clearScreen()

	if m.Header != "" {
		fmt.Println(m.Header)
		fmt.Println()
	}

	fmt.Println("╔" + strings.Repeat("═", m.Width-2) + "╗")
	fmt.Printf("║%s║\n", m.centerText(m.Title, m.Width))
	fmt.Println("╠" + strings.Repeat("═", m.Width-2) + "╣")

	for i, item := range m.Items {
		prefix := "  "
		if i == m.Selected {
			prefix = "► "
		}
		paddedText := m.centerText(prefix+item.Label, m.Width)
		if i == m.Selected {
			fmt.Printf("║\033[7m%s\033[0m║\n", paddedText) // Highlighted
		} else {
			fmt.Printf("║%s║\n", paddedText)
		}
	}

	fmt.Println("╚" + strings.Repeat("═", m.Width-2) + "╝")
	fmt.Println()
	fmt.Println("Use ↑/↓ arrows to navigate, Enter to select, 'q' to go back")
}

func (m *Menu) moveUp() {
	if m.Selected > 0 {
		m.Selected--
	} else {
		m.Selected = len(m.Items) - 1 // Wrap to bottom
	}
}

func (m *Menu) moveDown() {
	if m.Selected < len(m.Items)-1 {
		m.Selected++
	} else {
		m.Selected = 0 // Wrap to top
	}
}

// Show runs the menu until a selection is made. Returns the selected
// item's Value, or "" for Esc/'q' (treated as back/cancel by callers).
func (m *Menu) Show() string {
	if err := keyboard.Open(); err != nil {
		fmt.Printf("Failed to open keyboard: %v\n", err)
		return ""
	}
	defer keyboard.Close()

	for {
		m.render()

		char, key, err := keyboard.GetKey()
		if err != nil {
			fmt.Printf("Error reading key: %v\n", err)
			return ""
		}

		switch key {
		case keyboard.KeyArrowUp:
			m.moveUp()
		case keyboard.KeyArrowDown:
			m.moveDown()
		case keyboard.KeyEnter:
			return m.Items[m.Selected].Value
		case keyboard.KeyEsc:
			return ""
		}

		if char == 'q' || char == 'Q' {
			return ""
		}
	}
}
