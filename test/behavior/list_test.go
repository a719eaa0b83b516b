package behavior_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

const sampleCrontab = "../../testdata/crontab/valid/sample.cron"

var _ = Describe("List Command", func() {
	It("requires --file", func() {
		command := exec.Command(pathToCLI, "list")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say("a crontab file is required"))
	})

	It("lists the jobs in a crontab file", func() {
		command := exec.Command(pathToCLI, "list", "--file", sampleCrontab)
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say("backup.sh"))
		Expect(session.Out).To(gbytes.Say("check-disk.sh"))
	})

	It("shows comments and env vars with --all", func() {
		command := exec.Command(pathToCLI, "list", "--file", sampleCrontab, "--all")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say("PATH"))
	})

	It("emits JSON job entries with descriptions", func() {
		command := exec.Command(pathToCLI, "list", "--file", sampleCrontab, "--json")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say(`"description"`))
	})

	It("fails on a missing crontab file", func() {
		command := exec.Command(pathToCLI, "list", "--file", "/nonexistent/crontab")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say("failed to read crontab file"))
	})
})
