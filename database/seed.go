package database

import "api/models"

// starterQuestions is the minimal bank installed on an empty database.
// Real content arrives through the admin import tooling or the AI generator.
var starterQuestions = []models.Question{
    {
        QuestionText:  "If all Bloops are Razzies and all Razzies are Lazzies, are all Bloops definitely Lazzies?",
        Option1:       "Yes",
        Option2:       "No",
        Option3:       "Only some",
        Option4:       "Cannot be determined",
        CorrectAnswer: "Yes",
        Explanation:   "Transitivity: Bloops are Razzies, Razzies are Lazzies, so Bloops are Lazzies.",
        Difficulty:    models.DifficultyEasy,
        Category:      models.CategoryLogicalReasoning,
    },
    {
        QuestionText:  "Which number comes next in the sequence: 2, 6, 12, 20, 30, ...?",
        Option1:       "36",
        Option2:       "40",
        Option3:       "42",
        Option4:       "44",
        CorrectAnswer: "42",
        Explanation:   "Differences grow by 2 each step: 4, 6, 8, 10, then 12, giving 42.",
        Difficulty:    models.DifficultyMedium,
        Category:      models.CategoryQuantitativeReasoning,
    },
    {
        QuestionText:  "Choose the word most nearly opposite in meaning to 'candid'.",
        Option1:       "Frank",
        Option2:       "Evasive",
        Option3:       "Blunt",
        Option4:       "Honest",
        CorrectAnswer: "Evasive",
        Explanation:   "Candid means open and honest; evasive is its opposite.",
        Difficulty:    models.DifficultyEasy,
        Category:      models.CategoryLinguisticReasoning,
    },
    {
        QuestionText:  "A cube is painted red and cut into 27 equal smaller cubes. How many have exactly two painted faces?",
        Option1:       "8",
        Option2:       "12",
        Option3:       "6",
        Option4:       "24",
        CorrectAnswer: "12",
        Explanation:   "Edge cubes (excluding corners) have two painted faces; a cube has 12 edges.",
        Difficulty:    models.DifficultyHard,
        Category:      models.CategorySpatialReasoning,
    },
}
