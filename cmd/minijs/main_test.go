package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/minijs/internal/config"
	"github.com/you-not-fish/minijs/internal/syntax"
)

// runCLI runs the command line in an empty working directory with no
// config in the environment.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	chdir(t, t.TempDir())

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(filename, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func captureOutput(t *testing.T, fn func() int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code = fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}

func TestASTText(t *testing.T) {
	filename := writeTempFile(t, "input.mjs", "x = 1 + 2;\n")
	code, out, errOut := runCLI(t, "ast", filename)

	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.HasPrefix(out, "Program\n") {
		t.Errorf("text tree should start with Program:\n%s", out)
	}
	if !strings.Contains(out, "BinaryExpression +") {
		t.Errorf("text tree missing binary expression:\n%s", out)
	}
}

func TestASTJSON(t *testing.T) {
	filename := writeTempFile(t, "input.mjs", "let a = b[0];")

	code, out, errOut := runCLI(t, "ast", "--format", "json", filename)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if decoded["type"] != "Program" {
		t.Errorf("type = %v, want Program", decoded["type"])
	}
	if !strings.Contains(out, "\n  \"body\": [") {
		t.Errorf("default indent should be 2 spaces:\n%s", out)
	}
}

func TestASTJSONCompact(t *testing.T) {
	filename := writeTempFile(t, "input.mjs", "f();")
	code, out, errOut := runCLI(t, "ast", "-f", "json", "--indent", "0", filename)

	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact JSON should be one line:\n%s", out)
	}
}

func TestASTYAML(t *testing.T) {
	code, out, errOut := runCLI(t, "ast", "--format", "yaml", "--sample")

	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.HasPrefix(out, "type: Program\n") {
		t.Errorf("YAML should start with the program type:\n%s", out)
	}
	if !strings.Contains(out, "type: ClassDeclaration") {
		t.Errorf("YAML missing class declaration:\n%s", out)
	}
}

func TestASTUsesConfig(t *testing.T) {
	cfg := writeTempFile(t, "minijs.toml", "[output]\nformat = \"json\"\nindent = 0\n")
	filename := writeTempFile(t, "input.mjs", "x;")

	code, out, errOut := runCLI(t, "--config", cfg, "ast", filename)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.HasPrefix(out, `{"type":"Program"`) {
		t.Errorf("config format not applied:\n%s", out)
	}

	// flags win over the config file
	code, out, _ = runCLI(t, "--config", cfg, "ast", "--format", "text", filename)
	if code != 0 || !strings.HasPrefix(out, "Program\n") {
		t.Errorf("--format should override config, exit=%d:\n%s", code, out)
	}
}

func TestASTConfigFromEnv(t *testing.T) {
	cfg := writeTempFile(t, "env.toml", "[output]\nformat = \"yaml\"\n")
	filename := writeTempFile(t, "input.mjs", "x;")

	chdir(t, t.TempDir())
	t.Setenv(config.EnvVar, cfg)

	var out, errOut bytes.Buffer
	if code := run([]string{"ast", filename}, &out, &errOut); code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "type: Program") {
		t.Errorf("$%s config not applied:\n%s", config.EnvVar, out.String())
	}
}

func TestASTStdin(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	chdir(t, t.TempDir())

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	if _, err := w.WriteString("return 1;"); err != nil {
		t.Fatal(err)
	}
	w.Close()

	code, out, errOut := captureOutput(t, func() int {
		return run([]string{"ast", "-"}, os.Stdout, os.Stderr)
	})
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "ReturnStatement") {
		t.Errorf("stdin program not parsed:\n%s", out)
	}
}

func TestParseErrorRendered(t *testing.T) {
	filename := writeTempFile(t, "bad.mjs", "let x = 1;\nlet = 2;\n")
	code, out, errOut := runCLI(t, "ast", filename)

	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if out != "" {
		t.Errorf("no tree should be printed on error:\n%s", out)
	}
	for _, want := range []string{
		"bad.mjs:2:5: error: expected Identifier, found SimpleAssign",
		" 2 | let = 2;",
		"   |     ^",
	} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
}

func TestLexErrorRendered(t *testing.T) {
	filename := writeTempFile(t, "bad.mjs", "@@@")
	code, _, errOut := runCLI(t, "stats", filename)

	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "bad.mjs:1:1: error: unexpected character '@'") {
		t.Errorf("stderr missing lex error:\n%s", errOut)
	}
}

func TestInputErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.mjs")
	filename := writeTempFile(t, "ok.mjs", "x;")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing_file", []string{"ast", missing}, "opening source"},
		{"no_input", []string{"ast"}, "no input"},
		{"sample_and_file", []string{"tokens", "--sample", filename}, "--sample takes no file argument"},
		{"unknown_format", []string{"ast", "--format", "xml", filename}, `unknown format "xml"`},
		{"negative_indent", []string{"ast", "--indent", "-1", filename}, "must not be negative"},
		{"too_many_args", []string{"stats", filename, filename}, "accepts at most 1 arg"},
		{"unknown_command", []string{"compile"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			if code != 1 {
				t.Errorf("exit=%d, want 1", code)
			}
			if !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr missing %q:\n%s", tt.wantErr, errOut)
			}
		})
	}
}

func TestBadConfig(t *testing.T) {
	cfg := writeTempFile(t, "minijs.toml", "[output]\nformat = \"xml\"\n")
	code, _, errOut := runCLI(t, "--config", cfg, "ast", "--sample")

	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "unknown format") {
		t.Errorf("stderr missing config error:\n%s", errOut)
	}
}

func TestTokens(t *testing.T) {
	filename := writeTempFile(t, "input.mjs", "let x = 'a b';")
	code, out, errOut := runCLI(t, "tokens", filename)

	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header, rule, let, x, =, string, ;, EOF
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "POSITION") {
		t.Errorf("missing header:\n%s", out)
	}
	checks := []struct {
		line int
		want []string
	}{
		{2, []string{":1:1", "let"}},
		{3, []string{":1:5", "Identifier", `"x"`}},
		{4, []string{":1:7", "SimpleAssign", `"="`}},
		{5, []string{":1:9", "String", `"a b"`}},
		{6, []string{":1:14", "Semicolon"}},
		{7, []string{":1:15", "EOF"}},
	}
	for _, c := range checks {
		for _, want := range c.want {
			if !strings.Contains(lines[c.line], want) {
				t.Errorf("line %d = %q, missing %q", c.line, lines[c.line], want)
			}
		}
	}
}

func TestTokensLexError(t *testing.T) {
	filename := writeTempFile(t, "input.mjs", "x @")
	code, out, errOut := runCLI(t, "tokens", filename)

	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(out, "Identifier") {
		t.Errorf("tokens before the error should be printed:\n%s", out)
	}
	if !strings.Contains(errOut, "input.mjs:1:3: error: unexpected character '@'") {
		t.Errorf("stderr missing lex error:\n%s", errOut)
	}
}

func TestStats(t *testing.T) {
	filename := writeTempFile(t, "input.mjs", "f(); f();")
	code, out, errOut := runCLI(t, "stats", filename)

	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}

	want := "CallExpression             2\n" +
		"ExpressionStatement        2\n" +
		"Identifier                 2\n" +
		"Program                    1\n" +
		"total                      7\n"
	if out != want {
		t.Errorf("stats =\n%s\nwant\n%s", out, want)
	}
}

func TestCountNodesSample(t *testing.T) {
	code, out, errOut := runCLI(t, "stats", "--sample")
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "ClassDeclaration") || !strings.Contains(out, "total") {
		t.Errorf("sample stats incomplete:\n%s", out)
	}

	prog, err := syntax.Parse("x", "a = b;")
	if err != nil {
		t.Fatal(err)
	}
	counts, total := countNodes(prog)
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if counts[0].typ != "Identifier" || counts[0].n != 2 {
		t.Errorf("most frequent = %+v, want Identifier x2", counts[0])
	}
}

func TestVerboseLogging(t *testing.T) {
	filename := writeTempFile(t, "input.mjs", "x;")
	code, out, errOut := runCLI(t, "-v", "ast", filename)

	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.HasPrefix(out, "Program") {
		t.Errorf("logging should not reach stdout:\n%s", out)
	}
	for _, want := range []string{"level=DEBUG", "msg=\"source loaded\"", "msg=parsed", "statements=1", "cmd=ast"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
}

func TestQuietByDefault(t *testing.T) {
	code, _, errOut := runCLI(t, "ast", "--sample")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	if errOut != "" {
		t.Errorf("default log level should not print debug records:\n%s", errOut)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	if !strings.HasPrefix(out, "minijs version "+Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		lit  string
		want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\nb", `"a\nb"`},
		{"tab\there", `"tab\there"`},
		{`back\slash`, `"back\\slash"`},
		{`say "hi"`, `"say \"hi\""`},
	}

	for _, tt := range tests {
		if got := formatLiteral(tt.lit); got != tt.want {
			t.Errorf("formatLiteral(%q) = %s, want %s", tt.lit, got, tt.want)
		}
	}
}

// chdir changes the working directory to dir for the duration of the test,
// restoring the original directory on cleanup (equivalent to Go 1.24's t.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
