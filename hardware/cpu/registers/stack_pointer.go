// This file is part of Gopheroids.
//
// Gopheroids is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheroids is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheroids.  If not, see <https://www.gnu.org/licenses/>.

package registers

// StackPointer is an 8bit register with the stack page hard-wired into the
// address it produces. The stack of the 6502 always lives in the second page
// of memory and the pointer simply wraps around inside that page.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

// Address returns the current stack address. The stack page is included,
// unlike the Address() function of the plain Register type.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.Register.Value())
}
