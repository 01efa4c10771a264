package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setup isolates a test in a fresh working directory and home directory.
func setup(t *testing.T) string {
	t.Helper()
	work := t.TempDir()
	t.Chdir(work)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{"NEW_COMPONENT_DIR", "NEW_COMPONENT_LANG", "NEW_COMPONENT_STRICTEXIT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return work
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the command tree the way main does and returns its output.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errb bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errb)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	report(rootCmd, err)
	return out.String(), errb.String(), err
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
}

func readGenerated(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, content)
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestGenerateAvatar(t *testing.T) {
	work := setup(t)
	mkdir(t, filepath.Join(work, "src", "components"))

	stdout, stderr, err := run(t, "Avatar")
	if err != nil {
		t.Fatalf("run error = %v (stderr: %s)", err, stderr)
	}

	dir := filepath.Join(work, "src", "components", "Avatar")
	want := []string{
		"Avatar.js",
		"Avatar.lang.en-en.js",
		"Avatar.md",
		"Avatar.stories.js",
		"Avatar.styles.js",
		"Avatar.test.js",
		"index.js",
	}
	if diff := cmp.Diff(want, listDir(t, dir)); diff != "" {
		t.Fatalf("generated files mismatch (-want +got):\n%s", diff)
	}

	for _, name := range want {
		if content := readGenerated(t, filepath.Join(dir, name)); strings.Contains(content, "COMPONENT_NAME") {
			t.Errorf("%s still contains COMPONENT_NAME", name)
		}
	}

	component := readGenerated(t, filepath.Join(dir, "Avatar.js"))
	assertContains(t, component, `import { en_en } from "./Avatar.lang.en-en";`)
	assertContains(t, component, "const Avatar = (props) => {")
	assertContains(t, component, "const { avatar } = useStyles();")

	lang := readGenerated(t, filepath.Join(dir, "Avatar.lang.en-en.js"))
	assertContains(t, lang, "export { en_en };")

	assertContains(t, stdout, "Creating the Avatar component")
	assertContains(t, stdout, "✓ Directory created.")
	assertContains(t, stdout, "✓ Lang en-en created.")
	assertContains(t, stdout, "Component created!")
}

func TestGenerateDirAndLangFlags(t *testing.T) {
	work := setup(t)
	mkdir(t, filepath.Join(work, "app", "ui"))

	if _, stderr, err := run(t, "Card", "-d", "app/ui", "--lang", "fr-fr"); err != nil {
		t.Fatalf("run error = %v (stderr: %s)", err, stderr)
	}

	lang := readGenerated(t, filepath.Join(work, "app", "ui", "Card", "Card.lang.fr-fr.js"))
	assertContains(t, lang, "const fr_fr = {")
	assertContains(t, lang, "for French")
}

func TestGenerateMissingParentDir(t *testing.T) {
	work := setup(t)

	stdout, stderr, err := run(t, "Avatar")
	if err != nil {
		t.Fatalf("run error = %v, want nil", err)
	}
	if code := ExitCode(err); code != 0 {
		t.Errorf("ExitCode = %d, want 0", code)
	}
	assertContains(t, stderr, "Error creating component.")
	assertContains(t, stderr, `you need to create a parent "components" directory`)
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if _, err := os.Stat(filepath.Join(work, "src")); !os.IsNotExist(err) {
		t.Error("missing parent directory was created")
	}
}

func TestGenerateMissingNameStrictExit(t *testing.T) {
	setup(t)

	_, stderr, err := run(t, "--strict-exit")
	if code := ExitCode(err); code != 2 {
		t.Fatalf("ExitCode = %d, want 2 (err: %v)", code, err)
	}
	assertContains(t, stderr, "you need to specify a name for your component")
}

func TestGenerateStrictExitFromConfig(t *testing.T) {
	work := setup(t)
	if err := os.WriteFile(filepath.Join(work, ".new-component-config.json"), []byte(`{"strictExit": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := run(t, "Avatar")
	if code := ExitCode(err); code != 2 {
		t.Fatalf("ExitCode = %d, want 2", code)
	}
}

func TestGenerateExistingComponent(t *testing.T) {
	work := setup(t)
	existing := filepath.Join(work, "src", "components", "Avatar")
	mkdir(t, existing)
	marker := filepath.Join(existing, "keep.txt")
	if err := os.WriteFile(marker, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := run(t, "Avatar")
	if code := ExitCode(err); code != 0 {
		t.Fatalf("ExitCode = %d, want 0", code)
	}
	assertContains(t, stderr, "Looks like this component already exists!")
	if diff := cmp.Diff([]string{"keep.txt"}, listDir(t, existing)); diff != "" {
		t.Errorf("existing directory modified (-want +got):\n%s", diff)
	}
}

func TestGenerateDryRun(t *testing.T) {
	work := setup(t)
	mkdir(t, filepath.Join(work, "src", "components"))

	stdout, stderr, err := run(t, "Avatar", "--dry-run")
	if err != nil {
		t.Fatalf("run error = %v (stderr: %s)", err, stderr)
	}
	assertContains(t, stdout, "Would create")
	assertContains(t, stdout, "Avatar.lang.en-en.js")
	if _, err := os.Stat(filepath.Join(work, "src", "components", "Avatar")); !os.IsNotExist(err) {
		t.Error("dry run created the component directory")
	}
}

func TestGenerateCheck(t *testing.T) {
	work := setup(t)
	mkdir(t, filepath.Join(work, "src", "components"))

	stdout, stderr, err := run(t, "Avatar", "--check")
	if err != nil {
		t.Fatalf("run error = %v (stderr: %s)", err, stderr)
	}
	assertContains(t, stdout, "✓ No placeholders left.")
}

func TestGenerateCheckDryRun(t *testing.T) {
	work := setup(t)
	mkdir(t, filepath.Join(work, "src", "components"))

	stdout, stderr, err := run(t, "Avatar", "--check", "--dry-run")
	if err != nil {
		t.Fatalf("run error = %v (stderr: %s)", err, stderr)
	}
	assertContains(t, stdout, "No placeholders left.")
	assertContains(t, stdout, "Would create")
}

func TestGenerateCheckReportsLeftoverToken(t *testing.T) {
	work := setup(t)
	mkdir(t, filepath.Join(work, "src", "components"))

	_, stderr, err := run(t, "COMPONENT_NAME", "--check")
	if code := ExitCode(err); code != 1 {
		t.Fatalf("ExitCode = %d, want 1 (err: %v)", code, err)
	}
	assertContains(t, stderr, "still contains placeholders: COMPONENT_NAME")
}

func TestGenerateRequiredVersion(t *testing.T) {
	work := setup(t)
	mkdir(t, filepath.Join(work, "src", "components"))
	if err := os.WriteFile(filepath.Join(work, ".new-component-config.json"), []byte(`{"requiredVersion": ">=5.0.0"}`), 0644); err != nil {
		t.Fatal(err)
	}

	old := buildVersion
	buildVersion = "1.0.0"
	t.Cleanup(func() { buildVersion = old })

	_, stderr, err := run(t, "Avatar")
	if code := ExitCode(err); code != 0 {
		t.Fatalf("ExitCode = %d, want 0", code)
	}
	assertContains(t, stderr, "requires version >=5.0.0")
	if _, err := os.Stat(filepath.Join(work, "src", "components", "Avatar")); !os.IsNotExist(err) {
		t.Error("component generated despite version mismatch")
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	work := setup(t)
	if err := os.WriteFile(filepath.Join(work, ".new-component-config.json"), []byte(`{"colour": "blue"}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := run(t, "Avatar")
	if code := ExitCode(err); code != 1 {
		t.Fatalf("ExitCode = %d, want 1", code)
	}
	assertContains(t, stderr, "invalid config file")
}

func TestTooManyArgs(t *testing.T) {
	setup(t)
	if _, _, err := run(t, "Avatar", "Badge"); ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
}

func TestVersionFlag(t *testing.T) {
	setup(t)
	old := rootCmd.Version
	rootCmd.Version = "1.2.3"
	t.Cleanup(func() { rootCmd.Version = old })

	stdout, _, err := run(t, "--version")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if stdout != "new-component version 1.2.3\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestVersionJSON(t *testing.T) {
	setup(t)
	oldVersion, oldCommit := buildVersion, buildCommit
	buildVersion, buildCommit = "1.2.3", "abc123"
	t.Cleanup(func() { buildVersion, buildCommit = oldVersion, oldCommit })

	stdout, _, err := run(t, "version", "--json")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if info["version"] != "1.2.3" || info["commit"] != "abc123" || info["repository"] != "https://github.com/agentx-labs/new-component" {
		t.Errorf("info = %v", info)
	}
}

func TestConfigShowJSON(t *testing.T) {
	work := setup(t)
	if err := os.WriteFile(filepath.Join(work, ".new-component-config.json"), []byte(`{"dir": "app/ui"}`), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := run(t, "config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if got["dir"] != "app/ui" || got["lang"] != "en-en" {
		t.Errorf("config = %v", got)
	}
}

func TestConfigSetAndGet(t *testing.T) {
	setup(t)

	stdout, _, err := run(t, "config", "set", "lang", "de-de")
	if err != nil {
		t.Fatalf("config set error = %v", err)
	}
	assertContains(t, stdout, "Set lang = de-de")

	stdout, _, err = run(t, "config", "get", "lang")
	if err != nil {
		t.Fatalf("config get error = %v", err)
	}
	if stdout != "de-de\n" {
		t.Errorf("config get lang = %q, want de-de", stdout)
	}

	if _, _, err := run(t, "config", "set", "formatter.engine", "gofmt"); err == nil {
		t.Error("config set accepted an invalid engine")
	}
}

func TestConfigPath(t *testing.T) {
	setup(t)
	stdout, _, err := run(t, "config", "path")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	assertContains(t, stdout, "global")
	assertContains(t, stdout, "local")
	assertContains(t, stdout, ".new-component-config.json (missing)")
}

func TestEjectThenGenerate(t *testing.T) {
	work := setup(t)
	mkdir(t, filepath.Join(work, "src", "components"))

	stdout, _, err := run(t, "eject", "tpl")
	if err != nil {
		t.Fatalf("eject error = %v", err)
	}
	assertContains(t, stdout, "component.lang.js")

	custom := "// custom\n" + readGenerated(t, filepath.Join(work, "tpl", "index.js"))
	if err := os.WriteFile(filepath.Join(work, "tpl", "index.js"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, ".new-component-config.json"), []byte(`{"templatesDir": "tpl"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, stderr, err := run(t, "Badge"); err != nil {
		t.Fatalf("generate error = %v (stderr: %s)", err, stderr)
	}
	index := readGenerated(t, filepath.Join(work, "src", "components", "Badge", "index.js"))
	assertContains(t, index, "// custom")
	assertContains(t, index, `export { default } from "./Badge";`)

	if _, _, err := run(t, "eject", "tpl"); err == nil {
		t.Error("eject into a non-empty directory succeeded without --force")
	}
	if _, _, err := run(t, "eject", "tpl", "--force"); err != nil {
		t.Errorf("eject --force error = %v", err)
	}
}
