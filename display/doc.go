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

// Package display defines the boundary between the emulated machine and
// anything that wants to see its output. The vector generator produces
// Segment values; at every frame seam the machine hands the completed,
// ordered segment sequence to each registered Renderer.
//
// Nothing in this package draws anything. Pixel output is the concern of
// Renderer implementations such as the sdlplay package; non-visual
// implementations such as the digest package consume the same sequence.
package display
