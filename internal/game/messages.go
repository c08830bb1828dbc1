package game

import (
	"bytes"
	"fmt"
	"text/template"

	"gridwalk/assets"

	"github.com/Masterminds/sprig/v3"
)

const maxMessages = 50

// templateFuncs provides utility functions for message templates.
var templateFuncs = sprig.TxtFuncMap()

// MessageData is what message templates see.
type MessageData struct {
	Name   string // subject of the message
	Player string
	Turn   int
}

// Messages holds the parsed message templates.
type Messages struct {
	welcome *template.Template
	kill    *template.Template
}

// DefaultWelcome and DefaultKill are the stock message templates.
const (
	DefaultWelcome = assets.WelcomeMessage
	DefaultKill    = assets.KillMessage
)

// NewMessages parses the welcome and kill templates.
func NewMessages(welcome, kill string) (*Messages, error) {
	w, err := parseTemplate("welcome", welcome)
	if err != nil {
		return nil, err
	}
	k, err := parseTemplate("kill", kill)
	if err != nil {
		return nil, err
	}
	return &Messages{welcome: w, kill: k}, nil
}

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}
	return tmpl, nil
}

func expand(tmpl *template.Template, data MessageData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// Welcome renders the greeting shown at the start of a run.
func (m *Messages) Welcome(data MessageData) (string, error) { return expand(m.welcome, data) }

// Kill renders the message shown when the player kills something.
func (m *Messages) Kill(data MessageData) (string, error) { return expand(m.kill, data) }
