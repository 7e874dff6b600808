package bump

import (
	// Stdlib
	"os"
	"path/filepath"
	"strings"

	// Internal
	"github.com/cascii/verflow/git/gitutil"
	"github.com/cascii/verflow/guard"
	"github.com/cascii/verflow/shell"
)

const workflowBackendManifest = `[package]
name = "decorator"
version = "0.4.7"
edition = "2021"

[dependencies]
serde = { version = "1.0.0" }
`

const workflowSecondaryManifest = `[package]
name = "decorator-tauri"
version = "0.4.7"
edition = "2021"
`

const workflowDescriptor = `{
  "productName": "decorator",
  "version": "0.4.7",
  "identifier": "com.cascii.decorator"
}
`

// The lock refresh is disabled so that the workflow does not
// depend on cargo being installed.
const workflowConfig = "lock_refresh_command: []\n"

var _ = Describe("running the bump workflow", func() {

	var (
		repo       string
		originalWd string
	)

	runGit := func(args ...string) string {
		argsList := append([]string{"git"}, args...)
		stdout, stderr, err := shell.RunInDir(repo, argsList...)
		Expect(err).To(BeNil(), stderr.String())
		return stdout.String()
	}

	write := func(pathFromRoot, content string) {
		path := filepath.Join(repo, pathFromRoot)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(BeNil())
		Expect(os.WriteFile(path, []byte(content), 0644)).To(BeNil())
	}

	read := func(pathFromRoot string) string {
		content, err := os.ReadFile(filepath.Join(repo, pathFromRoot))
		Expect(err).To(BeNil())
		return string(content)
	}

	commitAll := func(message string) {
		runGit("add", "-A")
		runGit("commit", "-m", message)
	}

	commitCount := func() string {
		return strings.TrimSpace(runGit("rev-list", "--count", "HEAD"))
	}

	lastMessage := func() string {
		return strings.TrimSpace(runGit("log", "-1", "--pretty=%B"))
	}

	porcelain := func() string {
		return runGit("status", "--porcelain")
	}

	BeforeEach(func() {
		var err error
		repo, err = os.MkdirTemp("", "verflow-workflow-")
		Expect(err).To(BeNil())

		// The temp dir can live behind a symlink, while git reports
		// resolved paths. Resolve it here so the two always agree.
		repo, err = filepath.EvalSymlinks(repo)
		Expect(err).To(BeNil())

		runGit("init")
		runGit("config", "user.name", "verflow test")
		runGit("config", "user.email", "verflow@test")
		runGit("config", "commit.gpgsign", "false")

		write("Cargo.toml", workflowBackendManifest)
		write(filepath.Join("src-tauri", "Cargo.toml"), workflowSecondaryManifest)
		write(filepath.Join("src-tauri", "tauri.conf.json"), workflowDescriptor)
		write(".verflow.yml", workflowConfig)

		originalWd, err = os.Getwd()
		Expect(err).To(BeNil())
		Expect(os.Chdir(repo)).To(BeNil())
	})

	AfterEach(func() {
		os.Chdir(originalWd)
		os.RemoveAll(repo)
	})

	It("bumps minor and amends the commit on a feature message", func() {
		commitAll("Add new feature: cascii export")

		Expect(Run(nil)).To(BeNil())

		Expect(read("Cargo.toml")).To(ContainSubstring(`version = "0.5.0"`))
		Expect(read(filepath.Join("src-tauri", "Cargo.toml"))).To(
			ContainSubstring(`version = "0.5.0"`))
		Expect(read(filepath.Join("src-tauri", "tauri.conf.json"))).To(
			ContainSubstring(`"version": "0.5.0"`))

		// Still a single commit, same message, nothing left unstaged.
		Expect(commitCount()).To(Equal("1"))
		Expect(lastMessage()).To(Equal("Add new feature: cascii export"))
		Expect(porcelain()).To(BeEmpty())

		gitDir, err := gitutil.GitDirAbsolutePath()
		Expect(err).To(BeNil())
		Expect(guard.Engaged(gitDir)).To(BeFalse())
	})

	It("bumps patch and amends the commit on a fix message", func() {
		commitAll("fix crash on startup")

		Expect(Run(nil)).To(BeNil())

		Expect(read("Cargo.toml")).To(ContainSubstring(`version = "0.4.8"`))
		Expect(commitCount()).To(Equal("1"))
		Expect(lastMessage()).To(Equal("fix crash on startup"))
		Expect(porcelain()).To(BeEmpty())
	})

	It("does nothing when the message contains no keyword", func() {
		commitAll("update README")

		Expect(Run(nil)).To(BeNil())

		Expect(read("Cargo.toml")).To(ContainSubstring(`version = "0.4.7"`))
		Expect(read(filepath.Join("src-tauri", "tauri.conf.json"))).To(
			ContainSubstring(`"version": "0.4.7"`))
		Expect(commitCount()).To(Equal("1"))
		Expect(lastMessage()).To(Equal("update README"))
		Expect(porcelain()).To(BeEmpty())
	})

	It("does nothing when the guard is engaged", func() {
		commitAll("Add new feature: cascii export")

		gitDir, err := gitutil.GitDirAbsolutePath()
		Expect(err).To(BeNil())
		_, err = guard.Engage(gitDir)
		Expect(err).To(BeNil())
		defer guard.Release(gitDir)

		Expect(Run(nil)).To(BeNil())

		Expect(read("Cargo.toml")).To(ContainSubstring(`version = "0.4.7"`))
		Expect(commitCount()).To(Equal("1"))
	})

	It("works from a subdirectory of the repository", func() {
		commitAll("Add new feature: cascii export")

		Expect(os.Chdir(filepath.Join(repo, "src-tauri"))).To(BeNil())

		Expect(Run(nil)).To(BeNil())

		Expect(read("Cargo.toml")).To(ContainSubstring(`version = "0.5.0"`))
		Expect(commitCount()).To(Equal("1"))
		Expect(porcelain()).To(BeEmpty())
	})
})
