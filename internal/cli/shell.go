package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Var is one variable to export.
type Var struct {
	Name  string
	Value string
}

// EnvName returns explicit if set, otherwise key upper-cased with dashes
// turned into underscores and prefix prepended.
func EnvName(key, explicit, prefix string) string {
	if explicit != "" {
		return explicit
	}
	return prefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// splitPreserveNewlines splits s around "\r\n", "\r" and "\n", keeping each
// line break as its own element: "a\r\nb\nc\r" -> ["a", "\r\n", "b", "\n", "c", "\r"].
func splitPreserveNewlines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	var buf strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		if ch != '\r' && ch != '\n' {
			buf.WriteByte(ch)
			i++
			continue
		}
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
		if ch == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			parts = append(parts, "\r\n")
			i += 2
		} else {
			parts = append(parts, string(ch))
			i++
		}
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}

// shellLiteral single-quotes s for POSIX shells. Embedded single quotes
// become '\''. Newlines need no escaping inside single quotes.
func shellLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// powershellLiteral builds an expression of single-quoted pieces joined by
// +, with line breaks as double-quoted escapes.
func powershellLiteral(s string) string {
	if s == "" {
		return "''"
	}
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, "'"+strings.ReplaceAll(p, "'", "''")+"'")
		}
	}
	return strings.Join(out, " + ")
}

// cmdLiteral double-quotes each piece of s for cmd.exe and spells line
// breaks as literal \r and \n.
func cmdLiteral(s string) string {
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, `"\\n"`)
		case "\r":
			out = append(out, `"\\r"`)
		case "\r\n":
			out = append(out, `"\\r\\n"`)
		default:
			out = append(out, `"`+strings.ReplaceAll(p, `"`, `\"`)+`"`)
		}
	}
	return strings.Join(out, "")
}

func exportCmd(name, val string, persist bool) string {
	escaped := cmdLiteral(val)
	if persist {
		return fmt.Sprintf("setx %s \"%s\"", name, escaped)
	}
	return fmt.Sprintf("set \"%s=%s\"", name, strings.Trim(escaped, `"`))
}

func exportSh(name, val string, persist bool) string {
	if persist {
		return fmt.Sprintf("export %s=%s", name, shellLiteral(val))
	}
	return fmt.Sprintf("%s=%s", name, shellLiteral(val))
}

func exportPowershell(name, val string, persist bool) string {
	if persist {
		return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", powershellLiteral(name), powershellLiteral(val))
	}
	return fmt.Sprintf("$Env:%s = %s", name, powershellLiteral(val))
}

// ExportLine renders one assignment for shellType, which must not be auto.
func ExportLine(shellType ShellType, name, val string, persist bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		return exportSh(name, val, persist), nil
	case ShellTypePowershell:
		return exportPowershell(name, val, persist), nil
	case ShellTypeCmd:
		return exportCmd(name, val, persist), nil
	}
	return "", fmt.Errorf("unsupported shell type: %v", shellType)
}

// ExportVars renders vars one per line, resolving auto to the detected shell.
func ExportVars(shellType ShellType, vars []Var, persist bool) (string, error) {
	resolved, err := DecideShellType(shellType)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		line, err := ExportLine(resolved, v.Name, v.Value, persist)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// DecideShellType returns shellType unless it is auto, in which case the
// shell running the tool is detected. Unknown shells count as sh.
func DecideShellType(shellType ShellType) (ShellType, error) {
	if shellType != ShellTypeAuto {
		return shellType, nil
	}
	info, err := DetectUserShell()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	return info.Type, nil
}

func shellTypeOf(name string) ShellType {
	switch strings.TrimSuffix(strings.ToLower(name), ".exe") {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	}
	return ShellTypeSh
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// DetectUserShell walks the parent process chain looking for a known shell,
// then falls back to $SHELL and %COMSPEC%, which only name the default shell.
func DetectUserShell() (ShellInfo, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return ShellInfo{}, fmt.Errorf("cannot get parent process: %w", err)
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		n := strings.ToLower(name)
		for _, k := range knownShells {
			if strings.Contains(n, k) {
				return ShellInfo{Type: shellTypeOf(name), Name: name}, nil
			}
		}

		parent, err := p.Parent()
		if err != nil || parent == nil {
			break
		}
		p = parent
	}

	for _, env := range []string{"SHELL", "COMSPEC"} {
		if sh := os.Getenv(env); sh != "" {
			name := filepath.Base(sh)
			return ShellInfo{Type: shellTypeOf(name), Name: name}, nil
		}
	}
	return ShellInfo{}, fmt.Errorf("user shell not detected")
}
