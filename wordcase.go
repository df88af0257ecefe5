// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package wordcase

// ToSnake returns s converted to snake_case.
func ToSnake(s string) string { return Snake.Convert(s) }

// ToKebab returns s converted to kebab-case.
func ToKebab(s string) string { return Kebab.Convert(s) }

// ToShoutySnake returns s converted to SHOUTY_SNAKE_CASE.
func ToShoutySnake(s string) string { return ShoutySnake.Convert(s) }

// ToShoutyKebab returns s converted to SHOUTY-KEBAB-CASE.
func ToShoutyKebab(s string) string { return ShoutyKebab.Convert(s) }

// ToCamel returns s converted to camelCase (the first word is lower case).
func ToCamel(s string) string { return Camel.Convert(s) }

// ToPascal returns s converted to PascalCase.
func ToPascal(s string) string { return Pascal.Convert(s) }

// ToTrain returns s converted to Train-Case.
func ToTrain(s string) string { return Train.Convert(s) }

// ToSentence returns s converted to Sentence case: words are separated by
// a space and only the first rune of the first word is upper case.
func ToSentence(s string) string { return Sentence.Convert(s) }

// ToTitle returns s converted to Title Case: every word is capitalized,
// the remaining runes of each word are lower case, and words are separated
// by a single space.
//
//	ToTitle("mixed_up snake_case, with some _spaces") == "Mixed Up Snake Case With Some Spaces"
func ToTitle(s string) string {
	return Transform(s, func(r rune, b *Buffer) {
		if !b.FirstWord() {
			b.WriteByte(' ')
		}
		b.WriteRune(toUpper(r))
	}, func(r rune, b *Buffer) {
		b.WriteRune(toLower(r))
	})
}
