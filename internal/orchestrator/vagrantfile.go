package orchestrator

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"github.com/autumn-birds/micabox/internal/config"
)

// vagrantfileText renders a validated descriptor into a Vagrantfile. The
// output mirrors the descriptor exactly: forwarding rules and provisioning
// steps appear in descriptor order, and script bodies pass through inside a
// non-interpolating heredoc.
const vagrantfileText = `# Generated by micabox for machine "{{.Name}}".
# Do not edit; change the machine descriptor instead.
Vagrant.configure("2") do |config|
  config.vm.box = {{quote .Config.Box}}
  config.vm.box_check_update = {{.Config.BoxCheckUpdate}}
{{- range .Config.Forwards}}
  config.vm.network "forwarded_port", guest: {{.Guest}}, host: {{.Host}}{{if .HostIP}}, host_ip: {{quote .HostIP}}{{end}}
{{- end}}
{{- range .Config.Provision}}
  config.vm.provision "shell", inline: <<-'SHELL'
{{indent .Inline}}
  SHELL
{{- end}}
end
`

type vagrantfileData struct {
	Name   string
	Config *config.ProvisioningConfig
}

// indentBody indents a script body for the heredoc, dropping a single
// trailing newline so the terminator lands on its own line.
func indentBody(s string) string {
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}
	return strings.Join(lines, "\n")
}

// vagrantfileTemplate is the parsed template, initialized at package load time.
var vagrantfileTemplate *template.Template

func init() {
	funcs := template.FuncMap{
		"quote":  strconv.Quote,
		"indent": indentBody,
	}
	vagrantfileTemplate = template.Must(template.New("vagrantfile").Funcs(funcs).Parse(vagrantfileText))
}

// RenderVagrantfile produces the Vagrantfile text for a machine.
func RenderVagrantfile(m Machine) (string, error) {
	var buf bytes.Buffer
	err := vagrantfileTemplate.Execute(&buf, vagrantfileData{Name: m.Name, Config: m.Config})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
