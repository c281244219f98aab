package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahoo04/FractionalEstate-sub002/identity"
)

func TestAllowAll(t *testing.T) {
	var addr identity.Address
	addr[0] = 0x01
	assert.True(t, AllowAll{}.IsEligible(addr))
	assert.True(t, AllowAll{}.IsEligible(identity.ZeroAddress))
}

func TestAllowlist(t *testing.T) {
	var a, b identity.Address
	a[0], b[0] = 0x01, 0x02

	list := NewAllowlist()
	assert.False(t, list.IsEligible(a))

	list.Add(a)
	assert.True(t, list.IsEligible(a))
	assert.False(t, list.IsEligible(b))

	list.Remove(a)
	assert.False(t, list.IsEligible(a))
}
