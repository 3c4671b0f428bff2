package cmd

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const memoryConfig = `storage:
  backend: memory
export:
  format: csv
observability:
  logging:
    level: error
    format: text
`

var _ = Describe("Commands", func() {
	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "config.yml"), []byte(memoryConfig), 0o644)).To(Succeed())

		previousDir := configDir
		configDir = dir
		DeferCleanup(func() {
			configDir = previousDir
			resetConfirmed = false
			clearData = false
			exportFormat = ""
			exportDir = ""
			exportStdout = false
		})
	})

	Describe("reset", func() {
		It("should do nothing without confirmation", func() {
			Expect(resetCmd.RunE(resetCmd, nil)).To(Succeed())
		})

		It("should clear the configured store", func() {
			resetConfirmed = true
			Expect(resetCmd.RunE(resetCmd, nil)).To(Succeed())
		})
	})

	Describe("seed", func() {
		It("should seed after clearing", func() {
			clearData = true
			Expect(seedCmd.RunE(seedCmd, nil)).To(Succeed())
		})
	})

	Describe("export", func() {
		It("should write a file into the requested directory", func() {
			exportDir = filepath.Join(GinkgoT().TempDir(), "out")

			Expect(exportCmd.RunE(exportCmd, nil)).To(Succeed())

			entries, err := os.ReadDir(exportDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name()).To(HaveSuffix(".csv"))
		})

		It("should return an unsupported format as an error", func() {
			exportFormat = "pdf"
			exportDir = GinkgoT().TempDir()

			err := exportCmd.RunE(exportCmd, nil)
			Expect(err).To(MatchError(ContainSubstring("export failed")))
		})
	})

	It("should fail cleanly when the config is invalid", func() {
		Expect(os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("storage:\n  backend: redis\n"), 0o644)).To(Succeed())

		err := summaryCmd.RunE(summaryCmd, nil)
		Expect(err).To(MatchError(ContainSubstring("failed to init dependencies")))
	})
})
