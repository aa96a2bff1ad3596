// Package feeds holds the compiled-in journal feed registry.
package feeds

// Journal maps a journal display name to its feed URL.
type Journal struct {
	Name string
	URL  string
}

// Registry is an ordered list of journals. The order defines both the
// processing order of a run and the grouping order in the digest.
type Registry []Journal

// Default returns the built-in registry of monitored journals.
func Default() Registry {
	return Registry{
		{"Journal of Machine Learning Research", "https://www.jmlr.org/jmlr.xml"},
		{"Machine Learning (Springer)", "https://link.springer.com/journal/10994.rss"},
		{"Data Mining and Knowledge Discovery", "https://link.springer.com/journal/10618.rss"},
		{"Big Data", "https://www.liebertpub.com/action/showFeed?ui=0&mi=3b6f4c&ai=si&jc=big"},
		{"Journal of Data Science", "https://jds-online.org/journal/JDS/issue/current/rss"},
		{"IEEE Transactions on Knowledge and Data Engineering", "https://ieeexplore.ieee.org/rss/TOC54.XML"},
		{"Nature Machine Intelligence", "https://www.nature.com/natmachintell.rss"},
		{"ACM Transactions on Intelligent Systems and Technology", "https://dl.acm.org/journal/tist/rss"},
		{"VLDB Journal", "https://link.springer.com/journal/778.rss"},
		{"ACM Transactions on Database Systems", "https://dl.acm.org/journal/tods/rss"},
		{"IEEE Transactions on Big Data", "https://ieeexplore.ieee.org/rss/TOC8054267.XML"},
		{"Information Systems (Elsevier)", "https://www.journals.elsevier.com/information-systems/rss"},
		{"Knowledge and Information Systems", "https://link.springer.com/journal/10115.rss"},
		{"Data & Knowledge Engineering", "https://www.journals.elsevier.com/data-and-knowledge-engineering/rss"},
		{"Journal of Artificial Intelligence Research", "https://www.jair.org/index.php/jair/gateway/plugin/WebFeedGatewayPlugin/rss2"},
		{"IEEE Transactions on Neural Networks and Learning Systems", "https://ieeexplore.ieee.org/rss/TOC5962385.XML"},
		{"Neural Computation (MIT Press)", "https://direct.mit.edu/neco/rss"},
		{"Pattern Recognition (Elsevier)", "https://www.journals.elsevier.com/pattern-recognition/rss"},
		{"Artificial Intelligence (Elsevier)", "https://www.journals.elsevier.com/artificial-intelligence/rss"},
		{"Journal of Statistical Software", "https://www.jstatsoft.org/index.php/jss/gateway/plugin/WebFeedGatewayPlugin/rss2"},
		{"ACM Transactions on Knowledge Discovery from Data", "https://dl.acm.org/journal/tkdd/rss"},
		{"Data Science and Engineering (Springer)", "https://link.springer.com/journal/41019.rss"},
		{"International Journal of Data Science and Analytics", "https://link.springer.com/journal/41060.rss"},
		{"Journal of Big Data", "https://journalofbigdata.springeropen.com/articles/most-recent/rss"},
	}
}
