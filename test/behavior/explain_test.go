package behavior_test

import (
	"os/exec"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Explain Command", func() {
	Describe("Standard Cron Expressions", func() {
		It("explains a daily midnight schedule", func() {
			command := exec.Command(pathToCLI, "explain", "0 0 * * *")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("At 00:00"))
		})

		It("explains a stepped-minute schedule", func() {
			command := exec.Command(pathToCLI, "explain", "*/15 * * * *")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("every 15 minutes"))
		})

		It("explains a weekday range", func() {
			command := exec.Command(pathToCLI, "explain", "0 9 * * 1-5")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("Monday, Tuesday, Wednesday, Thursday, and Friday"))
		})

		It("explains the SAT-SUN weekday range boundary", func() {
			command := exec.Command(pathToCLI, "explain", "0 0 0 * * SAT-SUN")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("Sunday"))
			Expect(session.Out).To(gbytes.Say("Saturday"))
		})
	})

	Describe("Cron Aliases", func() {
		DescribeTable("nickname expressions",
			func(expression, expected string) {
				command := exec.Command(pathToCLI, "explain", expression)
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())
				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say(expected))
			},
			Entry("@daily", "@daily", "At 00:00"),
			Entry("@hourly", "@hourly", "minute 0 past every hour"),
			Entry("@weekly", "@weekly", "Sunday"),
			Entry("@monthly", "@monthly", "day 1"),
			Entry("@yearly", "@yearly", "January"),
		)
	})

	Describe("JSON Output", func() {
		It("emits an expression/description pair", func() {
			command := exec.Command(pathToCLI, "explain", "0 0 * * *", "--json")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session, 2*time.Second).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say(`"expression"`))
			Expect(session.Out).To(gbytes.Say(`"description"`))
		})
	})

	Describe("Error Handling", func() {
		It("rejects a malformed expression", func() {
			command := exec.Command(pathToCLI, "explain", "not a cron")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("failed to parse expression"))
		})

		It("rejects a field count outside 5-7", func() {
			command := exec.Command(pathToCLI, "explain", "0 0 * * * * * extra")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("expected 5 to 7 fields"))
		})

		It("rejects @reboot as unschedulable", func() {
			command := exec.Command(pathToCLI, "explain", "@reboot")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session).Should(gexec.Exit(1))
		})
	})
})
