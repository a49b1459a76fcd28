package testutil

// ScriptedPrompter is a prompt.Prompter that answers from scripted
// values and records every alert.
type ScriptedPrompter struct {
	// ConfirmAnswer is returned from Confirm.
	ConfirmAnswer bool

	// InputText and InputOK are returned from Input.
	InputText string
	InputOK   bool

	// Recorded interactions.
	Confirms []string
	Inputs   []string
	Alerts   []string
}

// Confirm implements prompt.Prompter.
func (p *ScriptedPrompter) Confirm(message string) bool {
	p.Confirms = append(p.Confirms, message)
	return p.ConfirmAnswer
}

// Input implements prompt.Prompter.
func (p *ScriptedPrompter) Input(message, initial string) (string, bool) {
	p.Inputs = append(p.Inputs, message)
	return p.InputText, p.InputOK
}

// Alert implements prompt.Prompter.
func (p *ScriptedPrompter) Alert(message string) {
	p.Alerts = append(p.Alerts, message)
}
