package rules

// Composition counts the character classes of a text sample.
type Composition struct {
	Vowels     int `json:"vowels"`
	Consonants int `json:"consonants"`
	Digits     int `json:"digits"`
	Others     int `json:"others"`
}

// WordScore scores the character composition of s. Empty input scores 0.
func WordScore(s string) int {
	if s == "" {
		return 0
	}
	return Compose(s).Score()
}

// Compose classifies every byte of s into exactly one class. Only ASCII
// letters are case-folded; each byte of a multi-byte UTF-8 sequence counts
// as "other".
func Compose(s string) Composition {
	var c Composition
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= '0' && b <= '9' {
			c.Digits++
			continue
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		switch {
		case isVowel(b):
			c.Vowels++
		case b >= 'a' && b <= 'z':
			c.Consonants++
		default:
			c.Others++
		}
	}
	return c
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Score applies the base formula, then the bonus and the penalty. The two
// adjustments are independent and may both apply.
func (c Composition) Score() int {
	score := 2*c.Vowels + c.Consonants - c.Others
	if c.Digits > 0 {
		score--
	}
	if (c.Vowels >= 3 && c.Consonants >= 3) || (c.Digits >= 2 && c.Others == 0) {
		score += 5
	}
	if (c.Vowels == 0 && c.Consonants > 5) || c.Others > 3 {
		score -= 3
	}
	return score
}
