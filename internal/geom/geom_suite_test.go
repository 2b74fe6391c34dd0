package geom_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGeom(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Geom Suite")
}
