// Copyright (C) 2025 Assoc-X Project
//
// This file is part of assoc-go.
//
// assoc-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// assoc-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with assoc-go.  If not, see <https://www.gnu.org/licenses/>.

package assoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionConstants(t *testing.T) {
	// Verify version constants are not empty
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, ProtocolVersion, "ProtocolVersion should not be empty")
	assert.NotEmpty(t, DomainName, "DomainName should not be empty")

	// The domain identity is frozen; changing either value invalidates
	// every signature in the wild.
	assert.Equal(t, "AssociatedAccounts", DomainName)
	assert.Equal(t, "1", ProtocolVersion)
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Equal(t, Version, info.AssocGoVersion)
	assert.Equal(t, ProtocolVersion, info.ProtocolVersion)
	assert.Equal(t, DomainName, info.DomainName)
}
