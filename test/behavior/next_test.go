package behavior_test

import (
	"encoding/json"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Next Command", func() {
	It("shows the default number of runs", func() {
		command := exec.Command(pathToCLI, "next", "*/15 * * * *")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say(`Next 10 runs for "\*/15 \* \* \* \*"`))
		Expect(session.Out).To(gbytes.Say(`1\. `))
	})

	It("honors --count", func() {
		command := exec.Command(pathToCLI, "next", "@daily", "--count", "3")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say("Next 3 runs"))
	})

	It("evaluates the schedule in the requested timezone", func() {
		command := exec.Command(pathToCLI, "next", "0 * * * *", "--timezone", "UTC", "--count", "1")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say("UTC"))
	})

	It("rejects an unknown timezone", func() {
		command := exec.Command(pathToCLI, "next", "0 * * * *", "--timezone", "Not/AZone")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say("invalid timezone"))
	})

	It("rejects a count above the allowed maximum", func() {
		command := exec.Command(pathToCLI, "next", "@daily", "--count", "500")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say("count must be at most 100"))
	})

	Describe("JSON Output", func() {
		It("emits a well-formed next-runs document", func() {
			command := exec.Command(pathToCLI, "next", "0 9 * * 1-5", "--count", "2", "--json")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())
			Eventually(session).Should(gexec.Exit(0))

			var result struct {
				Expression  string `json:"expression"`
				Description string `json:"description"`
				Timezone    string `json:"timezone"`
				NextRuns    []struct {
					Number    int    `json:"number"`
					Timestamp string `json:"timestamp"`
					Relative  string `json:"relative"`
				} `json:"next_runs"`
			}
			Expect(json.Unmarshal(session.Out.Contents(), &result)).To(Succeed())
			Expect(result.Expression).To(Equal("0 9 * * 1-5"))
			Expect(result.NextRuns).To(HaveLen(2))
			Expect(result.NextRuns[0].Number).To(Equal(1))
		})
	})
})
