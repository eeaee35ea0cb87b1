package database

import "studytrack_backend/internal/model"

// 默认学习卡片，覆盖五个固定类别与三档难度
var defaultCards = []model.StudyCard{
	{
		ID:              "fc-001",
		Category:        "ethics",
		Difficulty:      "medium",
		Front:           "What is truly ours, according to Marcus Aurelius?",
		BackExplanation: "Not power or possessions, but the ability to govern our own thoughts and actions.",
		BackExample:     "When facing a setback, instead of complaining, ask: what can I learn from this?",
		Philosopher:     "Marcus Aurelius",
	},
	{
		ID:              "fc-002",
		Category:        "ethics",
		Difficulty:      "medium",
		Front:           "Eudaimonia according to Aristotle",
		BackExplanation: "Happiness is a state of living well, reached through the continuous practice of virtue.",
		BackExample:     "One healthy meal does not make you healthy; the daily habit of eating well does.",
		Philosopher:     "Aristotle",
	},
	{
		ID:              "fc-003",
		Category:        "ethics",
		Difficulty:      "hard",
		Front:           "The Categorical Imperative",
		BackExplanation: "Act only on a principle that you could will to become a universal law.",
		BackExample:     "Before lying, ask yourself: what would the world be like if everyone lied?",
		Philosopher:     "Immanuel Kant",
	},
	{
		ID:              "fc-004",
		Category:        "ethics",
		Difficulty:      "easy",
		Front:           "Utilitarianism in one sentence",
		BackExplanation: "The right action is the one that brings the greatest happiness to the greatest number.",
		BackExample:     "Before playing loud music, consider whether your enjoyment outweighs your neighbours' peace.",
		Philosopher:     "Jeremy Bentham",
	},
	{
		ID:              "fc-005",
		Category:        "ethics",
		Difficulty:      "medium",
		Front:           "Stoic virtue",
		BackExplanation: "Focus on what you control, accept what you cannot.",
		BackExample:     "You cannot control the weather, but you control how you respond to the rain.",
		Philosopher:     "Epictetus",
	},
	{
		ID:              "fc-006",
		Category:        "epistemology",
		Difficulty:      "easy",
		Front:           "The Socratic starting point of knowledge",
		BackExplanation: "Wisdom begins with recognizing the limits of what you know.",
		BackExample:     "Admitting you don't understand a topic is the first step toward learning it.",
		Philosopher:     "Socrates",
	},
	{
		ID:              "fc-007",
		Category:        "epistemology",
		Difficulty:      "medium",
		Front:           "Cogito, ergo sum",
		BackExplanation: "Even radical doubt cannot doubt the existence of the doubter: I think, therefore I am.",
		BackExample:     "Whatever else you question, the act of questioning proves there is a questioner.",
		Philosopher:     "René Descartes",
	},
	{
		ID:              "fc-008",
		Category:        "existence",
		Difficulty:      "hard",
		Front:           "Existence precedes essence",
		BackExplanation: "Humans first exist, then define themselves through choices; there is no fixed human nature.",
		BackExample:     "You are not 'a procrastinator' by nature; you become one through repeated choices, and can choose otherwise.",
		Philosopher:     "Jean-Paul Sartre",
	},
	{
		ID:              "fc-009",
		Category:        "logic",
		Difficulty:      "easy",
		Front:           "Modus ponens",
		BackExplanation: "If P implies Q, and P holds, then Q holds.",
		BackExample:     "If it rains the street gets wet; it rains; therefore the street gets wet.",
	},
	{
		ID:              "fc-010",
		Category:        "aesthetics",
		Difficulty:      "medium",
		Front:           "Kant on judgments of beauty",
		BackExplanation: "Aesthetic judgment is subjective yet claims universal assent, grounded in disinterested pleasure.",
		BackExample:     "Calling a sunset beautiful expects others to agree, though no concept proves it.",
		Philosopher:     "Immanuel Kant",
	},
}

// 默认题库
var defaultQuestions = []model.QuizQuestion{
	{
		ID:     "qq-001",
		Prompt: "Which school of thought holds that we should focus only on what is within our control?",
		Options: []string{
			"Stoicism",
			"Hedonism",
			"Existentialism",
			"Rationalism",
		},
		CorrectOption: 0,
		Explanation:   "Stoics such as Epictetus taught that peace comes from distinguishing what we control from what we do not.",
		Category:      "ethics",
		Difficulty:    "easy",
		Philosopher:   "Epictetus",
	},
	{
		ID:     "qq-002",
		Prompt: "Who formulated the Categorical Imperative?",
		Options: []string{
			"Aristotle",
			"Immanuel Kant",
			"John Stuart Mill",
			"Friedrich Nietzsche",
		},
		CorrectOption: 1,
		Explanation:   "Kant's Categorical Imperative asks whether the principle of an action could hold as a universal law.",
		Category:      "ethics",
		Difficulty:    "medium",
		Philosopher:   "Immanuel Kant",
	},
	{
		ID:     "qq-003",
		Prompt: "\"I think, therefore I am\" is the foundational certainty of which philosopher?",
		Options: []string{
			"Socrates",
			"Plato",
			"René Descartes",
			"David Hume",
		},
		CorrectOption: 2,
		Explanation:   "Descartes reached the cogito by doubting everything that could possibly be doubted.",
		Category:      "epistemology",
		Difficulty:    "easy",
		Philosopher:   "René Descartes",
	},
	{
		ID:     "qq-004",
		Prompt: "According to Aristotle, eudaimonia is achieved through:",
		Options: []string{
			"Maximizing pleasure",
			"The continuous practice of virtue",
			"Escaping society",
			"Accumulating knowledge alone",
		},
		CorrectOption: 1,
		Explanation:   "For Aristotle, living well is an activity of the soul in accordance with virtue, sustained over a whole life.",
		Category:      "ethics",
		Difficulty:    "medium",
		Philosopher:   "Aristotle",
	},
	{
		ID:     "qq-005",
		Prompt: "\"Existence precedes essence\" means:",
		Options: []string{
			"Human nature is fixed at birth",
			"We define ourselves through our choices",
			"Essence and existence are identical",
			"Only essences truly exist",
		},
		CorrectOption: 1,
		Explanation:   "Sartre argued that humans first exist and only afterwards define what they are through action.",
		Category:      "existence",
		Difficulty:    "hard",
		Philosopher:   "Jean-Paul Sartre",
	},
	{
		ID:     "qq-006",
		Prompt: "Which inference pattern is modus ponens?",
		Options: []string{
			"P implies Q; not Q; therefore not P",
			"P implies Q; P; therefore Q",
			"P or Q; not P; therefore Q",
			"P implies Q; Q; therefore P",
		},
		CorrectOption: 1,
		Explanation:   "Affirming the antecedent of a conditional licenses the consequent.",
		Category:      "logic",
		Difficulty:    "easy",
	},
	{
		ID:     "qq-007",
		Prompt: "Utilitarianism judges an action primarily by:",
		Options: []string{
			"The actor's intention",
			"Conformity to divine law",
			"Its consequences for overall happiness",
			"The actor's character",
		},
		CorrectOption: 2,
		Explanation:   "Bentham and Mill evaluated actions by the balance of happiness they produce across everyone affected.",
		Category:      "ethics",
		Difficulty:    "medium",
		Philosopher:   "Jeremy Bentham",
	},
	{
		ID:     "qq-008",
		Prompt: "For Kant, a genuine judgment of beauty must be:",
		Options: []string{
			"Based on personal interest",
			"Disinterested yet claiming universal assent",
			"Provable from concepts",
			"Identical with moral judgment",
		},
		CorrectOption: 1,
		Explanation:   "The judgment of taste pleases without interest and still demands agreement from everyone.",
		Category:      "aesthetics",
		Difficulty:    "hard",
		Philosopher:   "Immanuel Kant",
	},
}

// 默认名言，休息阶段轮换展示
var defaultQuotes = []model.Quote{
	{Text: "The unexamined life is not worth living.", Author: "Socrates", Era: "ancient"},
	{Text: "I think, therefore I am.", Author: "René Descartes", Era: "modern"},
	{Text: "Hell is other people.", Author: "Jean-Paul Sartre", Era: "contemporary"},
	{Text: "It is not things that disturb us, but our judgments about things.", Author: "Marcus Aurelius", Era: "ancient"},
	{Text: "Man is condemned to be free.", Author: "Jean-Paul Sartre", Era: "contemporary"},
	{Text: "I know that I know nothing.", Author: "Socrates", Era: "ancient"},
	{Text: "He who has a why to live can bear almost any how.", Author: "Friedrich Nietzsche", Era: "modern"},
	{Text: "Happiness depends upon ourselves.", Author: "Aristotle", Era: "ancient"},
}
