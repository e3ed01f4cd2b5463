package tui

import (
	"strings"
	"time"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/interfaces/card"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldNumber = iota
	fieldExpiry
	fieldCVC
)

var _ application.CardWidget = (*CardForm)(nil)

// CardForm is the card-capture widget: three text inputs validated as a
// whole on every read.
type CardForm struct {
	inputs []textinput.Model
	labels []string
	focus  int
	now    func() time.Time
}

func NewCardForm() *CardForm {
	number := textinput.New()
	number.Placeholder = "4242 4242 4242 4242"
	number.CharLimit = 40
	number.Width = 24

	expiry := textinput.New()
	expiry.Placeholder = "MM/YY"
	expiry.CharLimit = 7
	expiry.Width = 8

	cvc := textinput.New()
	cvc.Placeholder = "CVC"
	cvc.CharLimit = 4
	cvc.Width = 6
	cvc.EchoMode = textinput.EchoPassword
	cvc.EchoCharacter = '•'

	f := &CardForm{
		inputs: []textinput.Model{number, expiry, cvc},
		labels: []string{"Card", "Expiry", "CVC"},
		now:    time.Now,
	}
	f.inputs[fieldNumber].Focus()
	return f
}

func (f *CardForm) PaymentMethod() (application.CardPaymentMethod, bool) {
	pm, err := f.parse()
	return pm, err == nil
}

// Err describes why the current input is not yet a usable card.
func (f *CardForm) Err() error {
	_, err := f.parse()
	return err
}

func (f *CardForm) parse() (application.CardPaymentMethod, error) {
	return card.Parse(
		f.inputs[fieldNumber].Value(),
		f.inputs[fieldExpiry].Value(),
		f.inputs[fieldCVC].Value(),
		f.now(),
	)
}

func (f *CardForm) SetValues(number, expiry, cvc string) {
	f.inputs[fieldNumber].SetValue(number)
	f.inputs[fieldExpiry].SetValue(expiry)
	f.inputs[fieldCVC].SetValue(cvc)
}

func (f *CardForm) Empty() bool {
	for _, in := range f.inputs {
		if strings.TrimSpace(in.Value()) != "" {
			return false
		}
	}
	return true
}

func (f *CardForm) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *CardForm) Prev() tea.Cmd {
	return f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
}

func (f *CardForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Update forwards msg to the focused input.
func (f *CardForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *CardForm) View() string {
	rows := make([]string, 0, len(f.inputs))
	for i, in := range f.inputs {
		rows = append(rows, fieldLabelStyle.Render(f.labels[i])+in.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
