package qsim_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/qsim"
)

func TestQsim(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Qsim Suite")
}

var _ = Describe("Observable", func() {
	It("builds the single-Z word", func() {
		obs := qsim.SingleZ(3, 1)
		Expect(obs).To(HaveLen(1))
		Expect(obs[0].Word).To(Equal("IZI"))
		Expect(obs[0].Coeff).To(Equal(1.0))
	})

	It("rejects words with unknown letters", func() {
		obs := qsim.Observable{{Coeff: 1, Word: "XQ"}}
		_, err := obs.Matrix(2)
		Expect(err).To(HaveOccurred())
	})

	It("rejects words of the wrong length", func() {
		obs := qsim.Observable{{Coeff: 1, Word: "Z"}}
		_, err := obs.Matrix(2)
		Expect(err).To(HaveOccurred())
	})

	It("sums weighted Pauli words", func() {
		obs := qsim.Observable{
			{Coeff: 0.5, Word: "ZI"},
			{Coeff: -0.25, Word: "IZ"},
		}
		m, err := obs.Matrix(2)
		Expect(err).NotTo(HaveOccurred())
		// diag(0.25, 0.75, -0.75, -0.25)
		Expect(real(m[0][0])).To(BeNumerically("~", 0.25, 1e-12))
		Expect(real(m[1][1])).To(BeNumerically("~", 0.75, 1e-12))
		Expect(real(m[2][2])).To(BeNumerically("~", -0.75, 1e-12))
		Expect(real(m[3][3])).To(BeNumerically("~", -0.25, 1e-12))
	})
})

var _ = Describe("Noisy evolution", func() {
	It("drives a Bell pair toward the maximally mixed state", func() {
		c := qsim.NewCircuit(2).H(0).CNOT(0, 1)
		d, err := qsim.EvolveNoisy(c, 1)
		Expect(err).NotTo(HaveOccurred())

		ideal, err := c.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(d.FidelityPure(ideal)).To(BeNumerically("<", 0.6))
		Expect(d.Purity()).To(BeNumerically("<", 1))
	})

	It("matches the pure simulator for expectation values at p=0", func() {
		c := qsim.NewCircuit(2).RY(0.9, 0).CNOT(0, 1).RX(0.4, 1)
		obs := qsim.Observable{{Coeff: 1, Word: "ZZ"}}

		s, err := c.Run()
		Expect(err).NotTo(HaveOccurred())
		pure, err := s.Expectation(obs)
		Expect(err).NotTo(HaveOccurred())

		d, err := qsim.EvolveNoisy(c, 0)
		Expect(err).NotTo(HaveOccurred())
		noisy, err := d.Expectation(obs)
		Expect(err).NotTo(HaveOccurred())

		Expect(math.Abs(pure - noisy)).To(BeNumerically("<", 1e-12))
	})
})
