package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataStore(t *testing.T) {
	d := NewData()
	assert.False(t, d.Test(OptTypename))
	d.SetTypename("hash:ip")
	assert.True(t, d.Test(OptTypename))
	assert.Equal(t, "hash:ip", d.Typename())
	d.Unset(OptTypename)
	assert.False(t, d.Test(OptTypename))
	assert.Equal(t, "", d.Typename())

	assert.Equal(t, FamilyUnspec, d.Family())
	d.SetFamily(FamilyInet6)
	assert.Equal(t, FamilyInet6, d.Family())

	_, ok := d.Revision()
	assert.False(t, ok)
	d.SetRevision(3)
	rev, ok := d.Revision()
	assert.True(t, ok)
	assert.Equal(t, uint8(3), rev)
}

func TestFamilyString(t *testing.T) {
	for _, f := range []Family{FamilyUnspec, FamilyInet, FamilyInet6, FamilyInet46} {
		parsed, ok := FamilyFromString(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, parsed)
	}
	_, ok := FamilyFromString("bogus")
	assert.False(t, ok)
}

func TestSizeOf(t *testing.T) {
	assert.Greater(t, SizeOf(OptIP, FamilyInet6), SizeOf(OptIP, FamilyInet))
	assert.Greater(t, SizeOf(OptPort, FamilyInet), 0)
	assert.Equal(t, 0, SizeOf(OptTypename, FamilyInet)) //not an entry attribute
	//encoded sizes stay 4-byte aligned
	assert.Equal(t, 0, SizeOf(OptCIDR, FamilyInet)%4)
}
