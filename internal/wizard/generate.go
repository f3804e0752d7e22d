package wizard

import (
	"bytes"
	"text/template"
)

// Answers holds all user responses from the wizard.
type Answers struct {
	ComposeFile       string
	ConfDir           string
	Image             string
	Port              string
	IntegrationName   string
	IntegrationSource string
}

const configTemplate = `# hadev configuration
# Render the stack with: hadev render && hadev up

compose_file: {{ .ComposeFile }}
conf_dir: {{ .ConfDir }}
{{- if .Image }}
image: {{ .Image }}
{{- end }}
{{- if .Port }}
port: {{ .Port }}
{{- end }}

integration:
  name: {{ .IntegrationName }}
  source: {{ .IntegrationSource }}
`

// GenerateConfig renders hadev.yml content from wizard answers.
func GenerateConfig(answers Answers) (string, error) {
	tmpl, err := template.New("hadev.yml").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}
	return buf.String(), nil
}
