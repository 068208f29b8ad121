package core

import (
	"context"
	"errors"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joseph-ayodele/receipts-extractor/internal/common"
	"github.com/joseph-ayodele/receipts-extractor/internal/entity"
	"github.com/joseph-ayodele/receipts-extractor/internal/extract"
)

// stubAcquirer hands back a fixed acquisition result or error.
type stubAcquirer struct {
	res extract.AcquisitionResult
	err error
}

func (s stubAcquirer) AcquireText(context.Context, string) (extract.AcquisitionResult, error) {
	return s.res, s.err
}

var _ = Describe("Processor", func() {
	var (
		acquirer stubAcquirer
		proc     *Processor
		rec      entity.ReceiptRecord
		procErr  error
	)

	BeforeEach(func() {
		acquirer = stubAcquirer{}
	})

	JustBeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))
		proc = NewProcessor(logger, acquirer, nil)
		proc.now = func() time.Time {
			return time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
		}
		rec, procErr = proc.Process(context.Background(), "/tmp/receipt.pdf")
	})

	When("the document is a complete receipt", func() {
		BeforeEach(func() {
			acquirer.res = extract.AcquisitionResult{
				Pages: []string{
					"WHOLE FOODS MARKET\nDate: 04/12/2023\nITEM QTY PRICE\n2 Coffee $3.50\nHouse Salad 8.25\nTotal 11.75",
				},
				Method: "pdf-text",
			}
		})

		It("succeeds", func() {
			Expect(procErr).NotTo(HaveOccurred())
		})

		It("extracts every field", func() {
			Expect(rec.MerchantName).To(Equal("WHOLE FOODS"))
			Expect(rec.PurchasedAt.Year()).To(Equal(2023))
			Expect(rec.PurchasedAt.Month()).To(Equal(time.April))
			Expect(rec.PurchasedAt.Day()).To(Equal(12))
			Expect(rec.Items).To(HaveLen(2))
		})

		It("keeps the item sum as the total once it agrees with the header", func() {
			Expect(rec.TotalAmount).To(BeNumerically("~", 11.75, 1e-9))
		})
	})

	When("no date or merchant can be found", func() {
		BeforeEach(func() {
			acquirer.res = extract.AcquisitionResult{
				Pages:  []string{"Total 15.00"},
				Method: "image-ocr",
			}
		})

		It("defaults the date to the processing time", func() {
			Expect(procErr).NotTo(HaveOccurred())
			Expect(rec.PurchasedAt).To(Equal(time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)))
		})

		It("substitutes the merchant sentinel", func() {
			Expect(rec.MerchantName).To(Equal(entity.UnknownMerchant))
		})

		It("synthesizes a single generic purchase", func() {
			Expect(rec.Items).To(ConsistOf(entity.LineItem{
				Name: "Purchase", Quantity: 1, UnitPrice: 15.00, TotalPrice: 15.00,
			}))
			Expect(rec.TotalAmount).To(Equal(15.00))
		})
	})

	When("a description precedes the total line", func() {
		BeforeEach(func() {
			acquirer.res = extract.AcquisitionResult{
				Pages:  []string{"Deep Tissue Massage\nTotal Due 15.00"},
				Method: "image-ocr",
			}
		})

		It("names the synthesized item after it", func() {
			Expect(procErr).NotTo(HaveOccurred())
			Expect(rec.Items).To(ConsistOf(entity.LineItem{
				Name: "Deep Tissue Massage", Quantity: 1, UnitPrice: 15.00, TotalPrice: 15.00,
			}))
		})
	})

	When("acquisition recovers no text at all", func() {
		BeforeEach(func() {
			acquirer.res = extract.AcquisitionResult{Pages: []string{"", ""}}
		})

		It("fails with an extraction error, never an empty record", func() {
			Expect(common.IsExtractionError(procErr)).To(BeTrue())
			Expect(rec).To(BeZero())
		})
	})

	When("acquisition recovers only whitespace", func() {
		BeforeEach(func() {
			acquirer.res = extract.AcquisitionResult{Pages: []string{"   \n  \t "}}
		})

		It("fails with an extraction error", func() {
			Expect(common.IsExtractionError(procErr)).To(BeTrue())
		})
	})

	When("the acquirer reports a validation failure", func() {
		BeforeEach(func() {
			acquirer.err = common.NewValidationErrorf("document not found: %s", "/tmp/receipt.pdf")
		})

		It("passes it through unchanged", func() {
			Expect(common.IsValidationError(procErr)).To(BeTrue())
			Expect(common.IsExtractionError(procErr)).To(BeFalse())
		})
	})

	When("the acquirer fails unexpectedly", func() {
		var boom error

		BeforeEach(func() {
			boom = errors.New("tesseract binary went missing")
			acquirer.err = boom
		})

		It("wraps the fault as an extraction error carrying the cause", func() {
			Expect(common.IsExtractionError(procErr)).To(BeTrue())
			Expect(errors.Is(procErr, boom)).To(BeTrue())
		})
	})
})
