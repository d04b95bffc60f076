package builder_test

import (
	"fmt"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/css-ease-presets/internal/builder"
	"github.com/pivotal-cf/css-ease-presets/internal/builder/fakes"
)

var _ = Describe("Checksummer", func() {
	var (
		filesystem  billy.Filesystem
		logger      *fakes.Logger
		checksummer builder.Checksummer
	)

	BeforeEach(func() {
		filesystem = memfs.New()
		logger = &fakes.Logger{}
		checksummer = builder.NewChecksummer(filesystem, logger)

		Expect(util.WriteFile(filesystem, "dist/ease-vars.css", []byte("hello world"), 0o644)).To(Succeed())
	})

	It("logs the sha256 checksum of the file at the given path", func() {
		err := checksummer.Sum("dist/ease-vars.css")
		Expect(err).NotTo(HaveOccurred())

		Expect(logger.PrintlnCallCount()).To(Equal(2))

		line := logger.PrintlnArgsForCall(0)[0]
		Expect(line).To(Equal(fmt.Sprintf("Calculating SHA256 checksum of %s...", "dist/ease-vars.css")))

		line = logger.PrintlnArgsForCall(1)[0]
		Expect(line).To(Equal("SHA256 checksum: b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"))
	})

	It("writes the checksum to a .sha256 file beside the file", func() {
		err := checksummer.Sum("dist/ease-vars.css")
		Expect(err).NotTo(HaveOccurred())

		contents, err := util.ReadFile(filesystem, "dist/ease-vars.css.sha256")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(contents)).To(Equal("b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"))
	})

	When("the file does not exist", func() {
		It("returns an error", func() {
			err := checksummer.Sum("dist/missing.css")
			Expect(err).To(MatchError(fs.ErrNotExist))
		})
	})
})
