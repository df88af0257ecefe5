// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytcase is the []byte equivalent of the wordcase package.
package bytcase

import "github.com/charlievieth/wordcase"

// ToSnake returns s converted to snake_case.
func ToSnake(s []byte) []byte { return Convert(wordcase.Snake, s) }

// ToKebab returns s converted to kebab-case.
func ToKebab(s []byte) []byte { return Convert(wordcase.Kebab, s) }

// ToShoutySnake returns s converted to SHOUTY_SNAKE_CASE.
func ToShoutySnake(s []byte) []byte { return Convert(wordcase.ShoutySnake, s) }

// ToShoutyKebab returns s converted to SHOUTY-KEBAB-CASE.
func ToShoutyKebab(s []byte) []byte { return Convert(wordcase.ShoutyKebab, s) }

// ToCamel returns s converted to camelCase (the first word is lower case).
func ToCamel(s []byte) []byte { return Convert(wordcase.Camel, s) }

// ToPascal returns s converted to PascalCase.
func ToPascal(s []byte) []byte { return Convert(wordcase.Pascal, s) }

// ToTrain returns s converted to Train-Case.
func ToTrain(s []byte) []byte { return Convert(wordcase.Train, s) }

// ToSentence returns s converted to Sentence case.
func ToSentence(s []byte) []byte { return Convert(wordcase.Sentence, s) }

// ToTitle returns s converted to Title Case.
func ToTitle(s []byte) []byte { return Convert(wordcase.Title, s) }
