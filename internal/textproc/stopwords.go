package textproc

// defaultStopwords is the Indonesian function-word list. The last four
// entries keep the boilerplate of the objective fill template out of the
// token stream.
var defaultStopwords = []string{
	"dan", "di", "ke", "dari", "yang", "untuk", "pada", "dengan",
	"dalam", "adalah", "ini", "itu", "atau", "oleh", "sebagai",
	"juga", "akan", "telah", "dapat", "ada", "tidak", "hal",
	"tersebut", "serta", "bagi", "hanya", "sangat", "bila",
	"saat", "kini", "yaitu", "dll", "dsb", "dst",
	"setelah", "mengikuti", "sesuai", "pelatihan",
}

// DefaultStopwords returns the stock Indonesian stopword set.
func DefaultStopwords() Stopwords {
	return NewStopwords(defaultStopwords)
}
