package commands_test

import (
	"bytes"
	"log"

	"github.com/go-git/go-billy/v5/memfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pivotal-cf/jhanda"

	"github.com/pivotal-cf/css-ease-presets/internal/commands"
)

var _ = Describe("Help", func() {
	const globalFlags = "-h, --help     bool  prints this usage information\n-v, --version  bool  prints the ease release version\n"

	var (
		output *bytes.Buffer
		help   commands.Help
	)

	BeforeEach(func() {
		output = bytes.NewBuffer(nil)
		logger := log.New(output, "", 0)

		commandSet := jhanda.CommandSet{}
		help = commands.NewHelp(output, globalFlags, commandSet, "build")
		commandSet["help"] = help
		commandSet["version"] = commands.NewVersion(logger, "")
		commandSet["build"] = commands.NewBuild(logger, memfs.New(), "")
	})

	Describe("Execute", func() {
		When("no command is given", func() {
			It("prints the global usage and every command", func() {
				err := help.Execute(nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(output.String()).To(HavePrefix("ease generates CSS easing presets"))
				Expect(output.String()).To(ContainSubstring("Usage: ease [options] [<command>] [<args>]\n"))
				Expect(output.String()).To(ContainSubstring("  -h, --help"))
				Expect(output.String()).To(ContainSubstring("Commands:\n" +
					"  build    generates the ease preset artifacts (default)\n" +
					"  help     prints this usage information\n" +
					"  version  prints the ease release version\n"))
			})
		})

		When("a command is given", func() {
			It("prints the command usage and its flags", func() {
				err := help.Execute([]string{"build"})
				Expect(err).NotTo(HaveOccurred())

				Expect(output.String()).To(HavePrefix("\nease build\n\n"))
				Expect(output.String()).To(ContainSubstring("Usage: ease [options] build [<args>]\n"))
				Expect(output.String()).To(ContainSubstring("It runs when ease is invoked without a command."))
				Expect(output.String()).To(ContainSubstring("Flags:\n"))
				Expect(output.String()).To(ContainSubstring("--source-directory"))
				Expect(output.String()).To(ContainSubstring("--output-directory"))
				Expect(output.String()).To(ContainSubstring("--module-file"))
				Expect(output.String()).To(ContainSubstring("--sha256"))
				Expect(output.String()).To(ContainSubstring("--easefile"))
			})

			It("prints no flag section for a command without flags", func() {
				err := help.Execute([]string{"version"})
				Expect(err).NotTo(HaveOccurred())

				Expect(output.String()).To(ContainSubstring("Usage: ease [options] version\n"))
				Expect(output.String()).NotTo(ContainSubstring("[<args>]"))
				Expect(output.String()).NotTo(ContainSubstring("Flags:"))
			})
		})

		When("the command does not exist", func() {
			It("returns an error", func() {
				err := help.Execute([]string{"bake"})
				Expect(err).To(MatchError(ContainSubstring("bake")))
			})
		})
	})
})
