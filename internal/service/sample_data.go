package service

import "utme_prep_backend/internal/model"

// builtinSampleRecords 内置兜底题目，保证解析链条的最后一层永远非空。
// 全部为完整四选项记录，严格门槛必过。
func builtinSampleRecords() []model.QuestionRecord {
	return []model.QuestionRecord{
		{
			ID:      1,
			Subject: "General",
			Text:    "Which planet is known as the Red Planet?",
			Options: map[model.ChoiceKey]string{
				model.ChoiceA: "Venus",
				model.ChoiceB: "Mars",
				model.ChoiceC: "Jupiter",
				model.ChoiceD: "Mercury",
			},
			Answer:      model.ChoiceB,
			Explanation: "Iron oxide on the Martian surface gives the planet its reddish colour.",
		},
		{
			ID:      2,
			Subject: "General",
			Text:    "What is the chemical symbol for water?",
			Options: map[model.ChoiceKey]string{
				model.ChoiceA: "H2O",
				model.ChoiceB: "CO2",
				model.ChoiceC: "NaCl",
				model.ChoiceD: "O2",
			},
			Answer:      model.ChoiceA,
			Explanation: "A water molecule is two hydrogen atoms bonded to one oxygen atom.",
		},
		{
			ID:      3,
			Subject: "General",
			Text:    "Solve for x: 2x + 6 = 14.",
			Options: map[model.ChoiceKey]string{
				model.ChoiceA: "2",
				model.ChoiceB: "3",
				model.ChoiceC: "4",
				model.ChoiceD: "5",
			},
			Answer:      model.ChoiceC,
			Explanation: "Subtract 6 from both sides to get 2x = 8, then divide by 2.",
		},
		{
			ID:      4,
			Subject: "General",
			Text:    "Which of the following is a unit of electric current?",
			Options: map[model.ChoiceKey]string{
				model.ChoiceA: "Volt",
				model.ChoiceB: "Ohm",
				model.ChoiceC: "Watt",
				model.ChoiceD: "Ampere",
			},
			Answer:      model.ChoiceD,
			Explanation: "Current is measured in amperes; volts measure potential difference.",
		},
		{
			ID:      5,
			Subject: "General",
			Text:    "The word \"benevolent\" most nearly means",
			Options: map[model.ChoiceKey]string{
				model.ChoiceA: "hostile",
				model.ChoiceB: "kind",
				model.ChoiceC: "careless",
				model.ChoiceD: "wealthy",
			},
			Answer:      model.ChoiceB,
			Exception:   "Do not confuse with \"benefactor\", which names a person rather than a disposition.",
			Explanation: "Benevolent describes a well-meaning, kindly disposition.",
		},
	}
}
