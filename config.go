// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

// PointerWidth is the width of the platform word in bits (32 or 64).
// Derived at compile time; slot and cursor layouts size themselves off it.
const PointerWidth = 32 << (^uint(0) >> 63)
