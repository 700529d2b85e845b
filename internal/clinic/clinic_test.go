package clinic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, "Clínica Odontológica Sorriso Perfeito", c.Name)
	assert.Equal(t, 2010, c.Founded)
	assert.Len(t, c.Services, 6)
	assert.Len(t, c.Plans, 8)
	assert.Equal(t, "Av. Paulista, 1000 - Bela Vista, São Paulo - SP, 01310-100", c.Contact.Address())
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.Plans[0] = "changed"
	assert.Equal(t, "Amil Dental", Default().Plans[0])
}
