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

// Package assoc provides version information for assoc-go and the account
// association protocol revision it implements.
package assoc

const (
	// Version is the current version of assoc-go
	Version = "1.0.0-alpha"

	// ProtocolVersion is the associated-accounts protocol revision this
	// library implements. It matches the EIP-712 domain version used when
	// hashing association records.
	ProtocolVersion = "1"

	// DomainName is the EIP-712 domain name shared by every conforming
	// implementation. Changing it invalidates all existing signatures.
	DomainName = "AssociatedAccounts"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	AssocGoVersion  string
	ProtocolVersion string
	DomainName      string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		AssocGoVersion:  Version,
		ProtocolVersion: ProtocolVersion,
		DomainName:      DomainName,
	}
}
