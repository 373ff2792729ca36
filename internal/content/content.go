// Package content holds the portfolio text shown in each section.
package content

import (
	"golang.org/x/text/language"
)

var (
	Owner       = "Arabella Chen"
	FullName    = "Yintao (Arabella) Chen"
	Email       = "arabella.chen@example.com"
	LinkedInURL = "https://www.linkedin.com/in/arabella-chen"
	GitHubURL   = "https://github.com/arabellachen"

	// Taglines rotate under the name in the header.
	Taglines = []string{
		"Aspiring Financial Analyst",
		"Quantitative Finance Enthusiast",
		"Music & Nature Lover",
		"Data Science Explorer",
	}

	aboutEnglish = []string{
		`I'm Arabella Chen, a Business Economics and Computer Science student at UC San Diego.
	I'm passionate about combining data analysis with financial knowledge to solve complex business problems.`,
		`As an aspiring analyst, I excel at using programming and statistical tools for data mining and
	financial modeling. My goal is to build a career in fintech, combining technological innovation with financial analysis.`,
		`Beyond my academic pursuits, I have diverse interests including Chinese pop music (especially
	Joey Yung's songs), exploring nature, and discovering delicious food. I believe in balancing analytical
	thinking with creative expression.`,
	}

	aboutChinese = []string{
		`我是陈胤陶（Arabella），一名来自加州大学圣地亚哥分校的商业经济学与计算机科学专业的学生。我热衷于将数据分析与金融知识相结合，解决复杂的商业问题。`,
		`作为一名有抱负的分析师，我擅长使用编程和统计工具进行数据挖掘和财务建模。我的目标是在金融科技领域建立职业生涯，将技术创新与金融分析相结合。`,
		`除了学术追求，我还有多种兴趣，包括中文流行音乐（特别是容祖儿的歌曲）、探索自然和发现美食。我相信平衡分析思维和创意表达的重要性。`,
	}
)

var aboutMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Chinese,
})

// AboutFor picks the about paragraphs for an Accept-Language header value.
// English is the fallback.
func AboutFor(acceptLanguage string) (language.Tag, []string) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English, aboutEnglish
	}
	_, idx, conf := aboutMatcher.Match(tags...)
	if idx == 1 && conf != language.No {
		return language.Chinese, aboutChinese
	}
	return language.English, aboutEnglish
}

// FinanceInterest is the quant finance interest block.
type FinanceInterest struct {
	Title   string
	Summary string
	Areas   []string
	Books   []string
	Quote   string
}

// Photo is one gallery tile. Full is the enlarged image.
type Photo struct {
	Thumbnail string
	Full      string
	Caption   string
}

// Job is one experience card.
type Job struct {
	Title            string
	Company          string
	Location         string
	Period           string
	Responsibilities []string
}

// Skill is a proficiency bar.
type Skill struct {
	Name    string
	Percent int
}

// SkillGroup is a titled list of skill tags.
type SkillGroup struct {
	Title  string
	Skills []string
}

// Project is one project card.
type Project struct {
	Title       string
	Description string
	Tags        []string
}

// Education is the degree block under projects.
type Education struct {
	Degree      string
	Institution string
	Period      string
	Courses     []string
	Activities  []string
}

// Song, Place and Food fill the interests tabs.
type Song struct {
	Name        string
	Year        int
	Description string
}

type Place struct {
	Name        string
	Location    string
	Description string
}

type Food struct {
	Name     string
	Type     string
	Favorite string
}

var (
	Jobs = []Job{
		{
			Title:    "Audit Intern",
			Company:  "Deloitte",
			Location: "Beijing, China",
			Period:   "August 2024 – September 2024",
			Responsibilities: []string{
				"Validated financial statements and tested internal controls for compliance with GAAP standards",
				"Participated in risk assessment processes for multinational clients",
				"Assisted senior auditors with documentation and evidence collection",
				"Ensured compliance with regulatory requirements and supported comprehensive audit reviews",
			},
		},
		{
			Title:    "Data Analyst Intern",
			Company:  "Keller Williams Realty",
			Location: "San Diego, CA",
			Period:   "June 2024 – August 2024",
			Responsibilities: []string{
				"Built predictive pricing models using Python and historical real estate data",
				"Developed automated dashboards for sales team performance tracking",
				"Analyzed market trends to identify potential investment opportunities",
				"Collaborated with real estate agents to optimize lead generation strategies",
			},
		},
		{
			Title:    "Data Analyst Intern",
			Company:  "Guotai Junan Securities",
			Location: "Shanghai, China",
			Period:   "July 2023 – September 2023",
			Responsibilities: []string{
				"Analyzed L2 market data to identify trading patterns and anomalies",
				"Collaborated with traders to enhance quantitative trading strategies",
				"Created visualization tools to track market microstructure metrics",
				"Developed backtesting frameworks for algorithmic trading models",
			},
		},
	}

	Skills = []Skill{
		{"Python", 85},
		{"SQL", 80},
		{"Java", 70},
		{"Excel (Advanced)", 90},
		{"C", 65},
		{"Stata", 75},
	}

	SkillGroups = []SkillGroup{
		{"Financial Analysis", []string{"Forecasting", "Variance analysis", "Regression modeling", "Risk assessment"}},
		{"Tools", []string{"Git", "ERP platforms", "Dashboarding tools", "Jupyter Notebook"}},
		{"Soft Skills", []string{"Analytical thinking", "Communication", "Leadership", "Problem-solving"}},
		{"Languages", []string{"English (Fluent)", "Mandarin (Native)", "Cantonese (Native)", "French (Intermediate)"}},
	}

	Projects = []Project{
		{
			Title:       "Financial Forecasting Tool",
			Description: "Developed a Python-based tool for simulating various revenue and labor cost scenarios using Monte Carlo methods",
			Tags:        []string{"Python", "Pandas", "NumPy", "Financial Modeling"},
		},
		{
			Title:       "Cryptocurrency Factor Model",
			Description: "Created a multi-factor model for cryptocurrency investments achieving a Sharpe ratio of 2.8 in backtesting",
			Tags:        []string{"Python", "Machine Learning", "Time Series Analysis", "Crypto"},
		},
		{
			Title:       "Unix Shell Implementation",
			Description: "Built a functional Unix shell in C with job control and memory validation capabilities",
			Tags:        []string{"C", "Systems Programming", "Unix", "Memory Management"},
		},
		{
			Title:       "Stock Market Sentiment Analyzer",
			Description: "Developed an NLP model to analyze social media sentiment and predict stock price movements",
			Tags:        []string{"Python", "NLP", "Machine Learning", "Financial Analysis"},
		},
	}

	School = Education{
		Degree:      "B.S. Business Economics & Computer Science",
		Institution: "University of California, San Diego",
		Period:      "2022 – 2026",
		Courses: []string{
			"Data Structures & Algorithms", "Econometrics", "Financial Accounting",
			"Statistical Methods", "Machine Learning", "Financial Markets",
		},
		Activities: []string{
			"Triton Finance Club - Vice President",
			"Data Science Student Society - Member",
			"Women in Business - Member",
			"Chinese Student Association - Cultural Events Coordinator",
		},
	}

	Songs = []Song{
		{"翅膀下的风", 2012, "原来盛世也许只不过水影镜花"},
		{"野孩子", 2001, "A beautiful song about freedom and wildness of youth."},
		{"勇", 2002, "望著是萬馬 千軍都直衝。"},
		{"火鸟", 2012, "火花擦随后更加丰盛"},
	}

	Places = []Place{
		{"Torrey Pines State Natural Reserve", "San Diego, CA", "Coastal trails above the Pacific with rare pines."},
		{"West Lake", "Hangzhou, China", "Willow-lined causeways and pagodas reflected on the water."},
		{"Jiankou Great Wall", "Beijing, China", "The wild, unrestored stretch of the wall along steep ridges."},
		{"La Jolla Cove", "San Diego, CA", "Sea lions, tide pools and sunsets over the cove."},
	}

	Foods = []Food{
		{"Dim Sum", "Chinese cuisine", "Har gow (shrimp dumplings)"},
		{"Bubble Tea", "Taiwanese drink", "Brown sugar milk tea with pearls"},
		{"Sushi", "Japanese cuisine", "Salmon nigiri and dragon rolls"},
		{"Desserts", "Sweet treats", "Tiramisu and mango pudding"},
	}

	Finance = FinanceInterest{
		Title: "Quantitative Finance",
		Summary: "My academic interests in economics and computer science culminate in my passion for quantitative finance. " +
			"I'm fascinated by using data-driven approaches to understand financial markets and develop trading strategies.",
		Areas: []string{
			"Algorithmic trading strategies",
			"Statistical arbitrage",
			"Market microstructure",
			"Factor investing",
			"Machine learning in finance",
		},
		Books: []string{
			"Advances in Financial Machine Learning",
			"Options, Futures, and Other Derivatives",
			"Python for Finance",
			"The Journal of Portfolio Management",
			"NBER Research Papers",
		},
		Quote: "\"In the world of finance, the most valuable commodity I know of is information.\" Gordon Gekko, Wall Street",
	}

	GalleryTitle = "Moments of Peace"
	GalleryIntro = "Capturing beautiful moments that bring tranquility to my life, from golden sunsets to peaceful nature retreats."

	Photos = []Photo{
		unsplash("1501696461415-6bd6660c6742", "Golden hour by the ocean, where peace meets inspiration"),
		unsplash("1533738363-b7f9aef128ce", "Music festival sunsets, where melody meets nature's beauty"),
		unsplash("1555396273-367ea4eb4db5", "Peaceful meals with friends, simple joys of life"),
		unsplash("1499346030926-9a72daac6c63", "Morning coffee and numbers, when finance meets sunrise"),
		unsplash("1495616811223-4d98c6e9c869", "Purple sunset skies, my favorite time to reconnect with nature"),
		unsplash("1494548162494-384bba4ab999", "Sunset coding sessions with a gentle breeze, pure bliss"),
	}
)

func unsplash(id, caption string) Photo {
	base := "https://images.unsplash.com/photo-" + id + "?auto=format&fit=crop"
	return Photo{
		Thumbnail: base + "&w=800&q=60",
		Full:      base + "&w=1200&q=80",
		Caption:   caption,
	}
}
