//
// corechess - a UCI-compatible chess engine core
//
// MIT License
//
// Copyright (c) 2026 corechess contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration holds the knobs the evaluator reads. The original
// had a much larger surface (pawn structure, mobility, king safety,
// per-piece bonuses, a lazy-eval cutoff guarding those expensive
// terms); evaluate() only does material and piece-square tables, so
// only the knobs those two terms use are kept - there is nothing left
// expensive enough for a lazy cutoff to skip.
type evalConfiguration struct {
	// Tempo is added once for the side to move.
	Tempo int16

	UsePositionalEval bool
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.Tempo = 15

	Settings.Eval.UsePositionalEval = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {

}
