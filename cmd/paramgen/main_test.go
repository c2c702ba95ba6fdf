package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testDir string

func TestMain(m *testing.M) {
	var err error
	testDir, err = os.MkdirTemp("", "paramgen_cmd_test_dir")
	if err != nil {
		fmt.Println("Couldn't create directory for test content:", err.Error())
		os.Exit(1)
	}

	exitVal := m.Run()

	err = os.RemoveAll(testDir)
	if err != nil {
		fmt.Println("Couldn't remove directory for test content:", err.Error())
		os.Exit(1)
	}

	os.Exit(exitVal)
}

func runCLI(args ...string) (stdout string, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer

	code = run(args, &outBuf, &errBuf)

	return outBuf.String(), errBuf.String(), code
}

func TestRun(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-u", "http://x.com", "-p", "a,b", "-d", "1"}, "http://x.com?a=1&b=1\n"},
		{[]string{"-u", "http://x.com?z=9", "-p", "a,b", "-d", "1", "-o", "url"}, "http://x.com?z=9&a=1&b=1\n"},
		{[]string{"-u", "http://x.com", "-p", "a,b", "-d", "1", "-o", "bodyurl"}, "a=1&b=1\n"},
		{[]string{"--url=http://x.com", "--params=a,b,c", "--data=1", "--output=nice"}, "http://x.com/c/1\n"},
		{[]string{"-u", "http://x.com", "-p", "a", "-d", "<a>&", "-o", "bodyurl", "-e", "html"}, "a=&#60;a&#62;&#38;\n"},
		{[]string{"-u", "http://x.com", "-p", "a", "-d", "<", "-o", "bodyurl", "-e", "2url"}, "a=%253C\n"},
		{[]string{"-u", "http://x.com", "-p", "a", "-d", "a b", "-e", "unknown"}, "http://x.com?a=a b\n"},
		{[]string{"-u", "http://x.com", "-p", "a", "-d", "1", "-o", "yaml"}, "\n"},
		{[]string{"-u", "http://x.com", "-d", "1"}, "http://x.com?\n"},
		{[]string{"-u", "http://x.com", "-p", "a,b", "-d", "1", "-o", "json"}, "{\n    \"a\": \"1\",\n    \"b\": \"1\"\n}\n"},
	}

	for _, test := range tests {
		stdout, stderr, code := runCLI(test.args...)
		if code != exitOK {
			t.Fatalf("%v: got exit code %d, want %d, stderr: %s", test.args, code, exitOK, stderr)
		}

		if stdout != test.want {
			t.Fatalf("%v: got %q, want %q", test.args, stdout, test.want)
		}
	}
}

func TestRunParamsFile(t *testing.T) {
	path := filepath.Join(testDir, "params.txt")

	err := os.WriteFile(path, []byte("a\nb\nc"), 0600)
	if err != nil {
		t.Fatalf("couldn't create test file: %v", err)
	}
	defer os.Remove(path)

	stdout, stderr, code := runCLI("-u", "http://x.com", "-p", path, "-c", "2", "-d", "1", "-o", "bodyurl")
	if code != exitOK {
		t.Fatalf("got exit code %d, want %d, stderr: %s", code, exitOK, stderr)
	}

	if want := "a=1&b=1\n"; stdout != want {
		t.Fatalf("got %q, want %q", stdout, want)
	}
}

func TestRunMissingArgument(t *testing.T) {
	tests := []struct {
		args []string
		arg  string
	}{
		{[]string{"-p", "a", "-d", "1"}, "url"},
		{[]string{"-u", "http://x.com", "-p", "a"}, "data"},
		{[]string{"-u", "http://x.com", "-d", "1", "-o", ""}, "output"},
	}

	for _, test := range tests {
		stdout, stderr, code := runCLI(test.args...)
		if code != exitMissingArgument {
			t.Fatalf("%v: got exit code %d, want %d", test.args, code, exitMissingArgument)
		}

		if stdout != "" {
			t.Fatalf("%v: stdout must be empty, got %q", test.args, stdout)
		}

		if !strings.HasPrefix(stderr, "Error:") {
			t.Fatalf("%v: stderr must start with 'Error:', got %q", test.args, stderr)
		}

		if !strings.Contains(stderr, test.arg) {
			t.Fatalf("%v: stderr '%s' doesn't contain '%s'", test.args, stderr, test.arg)
		}
	}
}

func TestRunParamsFileNotExist(t *testing.T) {
	path := filepath.Join(testDir, "not_exist.txt")

	stdout, stderr, code := runCLI("-u", "http://x.com", "-p", path, "-d", "1")
	if code != exitFileRead {
		t.Fatalf("got exit code %d, want %d", code, exitFileRead)
	}

	if stdout != "" {
		t.Fatalf("stdout must be empty, got %q", stdout)
	}

	if !strings.HasPrefix(stderr, "Error:") || !strings.Contains(stderr, "couldn't read params file") {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
}

func TestRunBadFlags(t *testing.T) {
	tests := [][]string{
		{"-u", "http://x.com", "-d", "1", "--count=abc"},
		{"-u", "http://x.com", "-d", "1", "--unknown"},
		{"-u", "http://x.com", "-d", "1", "--logLevel=loud"},
		{"-u", "http://x.com", "-d", "1", "--logFormat=xml"},
	}

	for _, args := range tests {
		_, stderr, code := runCLI(args...)
		if code != exitFailure {
			t.Fatalf("%v: got exit code %d, want %d", args, code, exitFailure)
		}

		if !strings.Contains(stderr, "Error:") {
			t.Fatalf("%v: stderr must contain 'Error:', got %q", args, stderr)
		}
	}
}

func TestRunHelp(t *testing.T) {
	stdout, _, code := runCLI("--help")
	if code != exitOK {
		t.Fatalf("got exit code %d, want %d", code, exitOK)
	}

	for _, name := range append(outputNames(), encodeNames()...) {
		if !strings.Contains(stdout, name) {
			t.Fatalf("usage doesn't contain %s", name)
		}
	}
}

func TestNormalizeArgs(t *testing.T) {
	flags, args, err := parseFlags([]string{"-u", "http://x.com", "-d", "a b", "--quiet", "-c", "3"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("got an error while testing: %v", err)
	}
	if flags == nil {
		t.Fatalf("flags must not be nil")
	}

	want := []string{"--url=http://x.com", `--data="a b"`, "--quiet", "--count=3"}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Fatalf("got %v, want %v", args, want)
	}
}
