package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joseph-ayodele/receipts-extractor/internal/entity"
)

var _ = Describe("reconcileTotal", func() {
	It("keeps the detected total when the item sum is off by the tolerance or more", func() {
		items := []entity.LineItem{{TotalPrice: 19.98}}
		Expect(reconcileTotal(items, 20.00, 0.01)).To(Equal(20.00))
	})

	It("replaces the total with the item sum when they agree within tolerance", func() {
		items := []entity.LineItem{{TotalPrice: 19.995}}
		Expect(reconcileTotal(items, 20.00, 0.01)).To(Equal(19.995))
	})

	It("keeps the total when there are no items", func() {
		Expect(reconcileTotal(nil, 20.00, 0.01)).To(Equal(20.00))
	})

	It("keeps the total when the item sum is zero", func() {
		items := []entity.LineItem{{TotalPrice: 0}}
		Expect(reconcileTotal(items, 20.00, 0.01)).To(Equal(20.00))
	})
})

var _ = Describe("synthesizeItems", func() {
	It("leaves extracted items untouched", func() {
		items := []entity.LineItem{{Name: "Coffee", Quantity: 2, UnitPrice: 1.75, TotalPrice: 3.50}}
		Expect(synthesizeItems("whatever", 3.50, items)).To(Equal(items))
	})

	It("synthesizes nothing without a positive total", func() {
		Expect(synthesizeItems("no amounts here", 0, nil)).To(BeNil())
	})

	It("uses a nearby description line when one exists", func() {
		text := "Oil Change Service\nInvoice 0042\nTotal 49.99"
		items := synthesizeItems(text, 49.99, nil)
		Expect(items).To(ConsistOf(entity.LineItem{
			Name: "Oil Change Service", Quantity: 1, UnitPrice: 49.99, TotalPrice: 49.99,
		}))
	})

	It("falls back to a generic purchase", func() {
		items := synthesizeItems("Total 15.00", 15.00, nil)
		Expect(items).To(ConsistOf(entity.LineItem{
			Name: "Purchase", Quantity: 1, UnitPrice: 15.00, TotalPrice: 15.00,
		}))
	})
})
