package manifest

import (
	// Stdlib
	"os"
	"path/filepath"

	// Internal
	"github.com/cascii/verflow/config"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/version"
)

const backendManifestContent = `[package]
name = "decorator"
version = "0.4.7"
edition = "2021"

[dependencies]
serde = { version = "0.4.7" }
`

const secondaryManifestContent = `[package]
name = "decorator-tauri"
version = "0.4.7"
edition = "2021"
`

const descriptorContent = `{
  "productName": "decorator",
  "version": "0.4.7",
  "identifier": "com.cascii.decorator"
}
`

var _ = Describe("the configuration artifacts", func() {

	var (
		root string
		cfg  *config.Config
	)

	mustParse := func(versionString string) *version.Version {
		ver, err := version.Parse(versionString)
		Expect(err).To(BeNil())
		return ver
	}

	write := func(pathFromRoot, content string) {
		path := filepath.Join(root, pathFromRoot)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(BeNil())
		Expect(os.WriteFile(path, []byte(content), 0644)).To(BeNil())
	}

	read := func(pathFromRoot string) string {
		content, err := os.ReadFile(filepath.Join(root, pathFromRoot))
		Expect(err).To(BeNil())
		return string(content)
	}

	BeforeEach(func() {
		var err error
		root, err = os.MkdirTemp("", "verflow-manifest-")
		Expect(err).To(BeNil())

		cfg = &config.Config{
			BackendManifest:   "Cargo.toml",
			SecondaryManifest: filepath.Join("src-tauri", "Cargo.toml"),
			Descriptor:        filepath.Join("src-tauri", "tauri.conf.json"),
		}

		write(cfg.BackendManifest, backendManifestContent)
		write(cfg.SecondaryManifest, secondaryManifestContent)
		write(cfg.Descriptor, descriptorContent)
	})

	AfterEach(func() {
		os.RemoveAll(root)
	})

	Describe("reading the canonical version", func() {

		It("finds the version in the backend manifest", func() {
			ver, err := CanonicalVersion(root, cfg.BackendManifest)
			Expect(err).To(BeNil())
			Expect(ver.String()).To(Equal("0.4.7"))
		})

		It("returns ErrVersionNotFound when the field is missing", func() {
			write(cfg.BackendManifest, "[package]\nname = \"decorator\"\n")

			_, err := CanonicalVersion(root, cfg.BackendManifest)
			Expect(errs.RootCause(err)).To(Equal(ErrVersionNotFound))
		})
	})

	Describe("rewriting the version", func() {

		It("writes the new version to all three artifacts", func() {
			oldVer, newVer := mustParse("0.4.7"), mustParse("0.5.0")

			for _, art := range Artifacts(cfg) {
				changed, err := art.Rewrite(root, oldVer, newVer)
				Expect(err).To(BeNil())
				Expect(changed).To(BeTrue())
			}

			Expect(read(cfg.BackendManifest)).To(ContainSubstring(`version = "0.5.0"`))
			Expect(read(cfg.SecondaryManifest)).To(ContainSubstring(`version = "0.5.0"`))
			Expect(read(cfg.Descriptor)).To(ContainSubstring(`"version": "0.5.0"`))
		})

		It("leaves dependency version pins alone", func() {
			art := Artifacts(cfg)[0]
			_, err := art.Rewrite(root, mustParse("0.4.7"), mustParse("0.5.0"))
			Expect(err).To(BeNil())

			// Only the first occurrence is substituted.
			Expect(read(cfg.BackendManifest)).To(ContainSubstring(`serde = { version = "0.4.7" }`))
		})

		It("keeps the field spacing as found", func() {
			write(cfg.BackendManifest, "[package]\nname = \"decorator\"\nversion=\"0.4.7\"\n")
			write(cfg.Descriptor, "{\n  \"version\" : \"0.4.7\"\n}\n")

			backend := Artifacts(cfg)[0]
			changed, err := backend.Rewrite(root, mustParse("0.4.7"), mustParse("0.5.0"))
			Expect(err).To(BeNil())
			Expect(changed).To(BeTrue())
			Expect(read(cfg.BackendManifest)).To(ContainSubstring(`version="0.5.0"`))

			descriptor := Artifacts(cfg)[2]
			changed, err = descriptor.Rewrite(root, mustParse("0.4.7"), mustParse("0.5.0"))
			Expect(err).To(BeNil())
			Expect(changed).To(BeTrue())
			Expect(read(cfg.Descriptor)).To(ContainSubstring(`"version" : "0.5.0"`))
		})

		It("reports a miss and leaves the artifact alone", func() {
			art := Artifacts(cfg)[2]
			changed, err := art.Rewrite(root, mustParse("1.0.0"), mustParse("1.1.0"))
			Expect(err).To(BeNil())
			Expect(changed).To(BeFalse())
			Expect(read(cfg.Descriptor)).To(Equal(descriptorContent))
		})

		It("skips missing optional artifacts", func() {
			Expect(os.Remove(filepath.Join(root, cfg.Descriptor))).To(BeNil())

			art := Artifacts(cfg)[2]
			changed, err := art.Rewrite(root, mustParse("0.4.7"), mustParse("0.5.0"))
			Expect(err).To(BeNil())
			Expect(changed).To(BeFalse())
		})

		It("fails on a missing canonical artifact", func() {
			Expect(os.Remove(filepath.Join(root, cfg.BackendManifest))).To(BeNil())

			art := Artifacts(cfg)[0]
			_, err := art.Rewrite(root, mustParse("0.4.7"), mustParse("0.5.0"))
			Expect(err).ToNot(BeNil())
		})
	})
})
