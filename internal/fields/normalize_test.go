package fields

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joseph-ayodele/receipts-extractor/internal/heuristics"
)

var _ = Describe("Normalize", func() {
	var (
		vocab *heuristics.Config
		pages []string
		text  string
	)

	BeforeEach(func() {
		vocab = heuristics.Default()
	})

	JustBeforeEach(func() {
		text = Normalize(vocab, pages)
	})

	When("the text is already normalized", func() {
		BeforeEach(func() {
			pages = []string{"WHOLE FOODS\nDate: 04/12/2023\nTotal $23.45"}
		})

		It("returns it unchanged", func() {
			Expect(text).To(Equal("WHOLE FOODS\nDate: 04/12/2023\nTotal $23.45"))
		})
	})

	When("the text is messy", func() {
		BeforeEach(func() {
			pages = []string{"  WHOLE   FOODS  \n\n\n===== RECEIPT =====\n   \nTotal*  $23.45  "}
		})

		It("collapses whitespace, drops blank lines, and strips separators", func() {
			Expect(text).To(Equal("WHOLE FOODS\nRECEIPT\nTotal $23.45"))
		})

		It("is idempotent", func() {
			Expect(Normalize(vocab, []string{text})).To(Equal(text))
		})
	})

	When("digits were misread as letters", func() {
		BeforeEach(func() {
			pages = []string{"TOTAL 2S.4O\nBill Smith was the server"}
		})

		It("repairs spans that contain a real digit", func() {
			Expect(text).To(ContainSubstring("TOTAL 25.40"))
		})

		It("leaves ordinary words alone", func() {
			Expect(text).To(ContainSubstring("Bill Smith"))
		})
	})

	When("a word was split by a stray OCR space", func() {
		BeforeEach(func() {
			pages = []string{"Iced Coffe e 4.50"}
		})

		It("rejoins it", func() {
			Expect(text).To(Equal("Iced coffee 4.50"))
		})
	})

	When("pages are separate", func() {
		BeforeEach(func() {
			pages = []string{"page one", "", "page two"}
		})

		It("joins non-empty pages with newlines", func() {
			Expect(text).To(Equal("page one\npage two"))
		})
	})
})
