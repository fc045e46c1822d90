package llm

import (
	"fmt"
	"strings"

	"github.com/chinmaypg001-sys/TechWave/internal/model"
)

var passageLengths = map[string]string{
	"short":  "2-3 sentences (50-80 words)",
	"medium": "3-4 paragraphs (300-400 words)",
	"long":   "5-6 paragraphs (600-800 words)",
}

var flowchartComplexities = map[string]string{
	"simple":  "3-5 steps with basic decision points",
	"medium":  "6-10 steps with 2-3 decision points",
	"complex": "12+ steps with multiple decision branches and loops",
}

var proseDifficulty = map[string]string{
	"beginner":    "Use very simple language, short sentences, and everyday examples. Avoid technical jargon.",
	"middle":      "Use clear, straightforward language with occasional technical terms explained simply.",
	"intermediate": "Use appropriate technical terms and explain complex concepts clearly.",
	"advanced":    "Use technical terminology freely. Assume prior knowledge of foundational concepts.",
	"competitive": "Use advanced technical language. Include problem-solving approaches and deeper analysis.",
}

var flowchartDifficulty = map[string]string{
	"beginner":    "Use very simple language, basic boxes, and straightforward logic flow. Use START and END clearly.",
	"middle":      "Use clear language with occasional technical terms. Show simple decision logic.",
	"intermediate": "Use technical terminology. Show multiple paths and decision logic clearly.",
	"advanced":    "Use technical terminology freely. Include loops, complex conditions, and parallel processes.",
	"competitive": "Use advanced technical language. Include optimization paths, edge cases, and complex decision trees.",
}

func buildQuizPrompt(topic, gradeLevel string, video *model.VideoCandidate) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Generate a quiz about the topic: %q for %s.\n\n", topic, gradeLevel))

	if video != nil {
		sb.WriteString("VIDEO INFORMATION:\n")
		sb.WriteString("Title: " + video.Title + "\n")
		sb.WriteString("Channel: " + video.Channel + "\n")
		sb.WriteString("Description: " + video.Description + "\n\n")
		sb.WriteString("Generate questions that a student would be able to answer AFTER watching this specific video.\n")
		sb.WriteString("Focus on concepts that would likely be covered in this video based on its title and description.\n\n")
	} else {
		sb.WriteString("Generate general questions about this topic.\n\n")
	}

	sb.WriteString("Create exactly 4 multiple choice questions (MCQ) and 2 simple short-answer questions.\n")
	sb.WriteString(fmt.Sprintf("Make sure the difficulty level is appropriate for %s.\n\n", gradeLevel))

	sb.WriteString("RULES:\n")
	sb.WriteString("- Keep questions appropriate for the grade level\n")
	sb.WriteString("- MCQ options should be realistic and related to the topic\n")
	sb.WriteString("- Short answers should need only 1-3 words\n")
	sb.WriteString("- Include common misconceptions in wrong MCQ options\n\n")

	sb.WriteString("FORMAT:\n")
	sb.WriteString("MCQ QUESTIONS (4):\n")
	for i := 1; i <= 4; i++ {
		sb.WriteString(fmt.Sprintf("%d. [Question]\n", i))
		sb.WriteString("   A) [Option A]\n")
		sb.WriteString("   B) [Option B]\n")
		sb.WriteString("   C) [Option C]\n")
		sb.WriteString("   D) [Option D]\n")
		sb.WriteString("   Answer: [Correct letter]\n\n")
	}
	sb.WriteString("SHORT ANSWER QUESTIONS (2):\n")
	for i := 5; i <= 6; i++ {
		sb.WriteString(fmt.Sprintf("%d. [Simple question requiring 1-2 word answer]\n", i))
		sb.WriteString("   Answer: [Correct answer]\n\n")
	}

	return sb.String()
}

func buildPassagePrompt(topic, level, gradeLevel, board, length string) string {
	lengthInstruction, ok := passageLengths[length]
	if !ok {
		lengthInstruction = passageLengths["medium"]
	}
	guidance, ok := proseDifficulty[level]
	if !ok {
		guidance = proseDifficulty["beginner"]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate an educational paragraph about: %q\n\n", topic))
	sb.WriteString("GRADE/LEVEL: " + gradeLevel + "\n")
	sb.WriteString("BOARD: " + board + "\n")
	sb.WriteString("LENGTH: " + lengthInstruction + "\n\n")

	sb.WriteString("WRITING STYLE:\n" + guidance + "\n\n")

	sb.WriteString("RULES:\n")
	sb.WriteString("- Make the content engaging and easy to understand\n")
	sb.WriteString(fmt.Sprintf("- Include relevant examples appropriate for %s\n", gradeLevel))
	sb.WriteString("- Use clear structure with proper paragraphing\n")
	sb.WriteString("- Ensure accuracy of information\n")
	sb.WriteString(fmt.Sprintf("- Make it suitable for %s curriculum\n", board))
	sb.WriteString("- Include key concepts and definitions\n")
	sb.WriteString("- Use formatting with bold for important terms\n\n")

	sb.WriteString("FORMAT:\n")
	sb.WriteString("Start with a clear introduction, develop the main ideas with examples, ")
	sb.WriteString("and conclude with a summary or connection to real-world applications.\n")

	return sb.String()
}

func buildFlowchartPrompt(topic, level, gradeLevel, board, complexity string) string {
	complexityInstruction, ok := flowchartComplexities[complexity]
	if !ok {
		complexityInstruction = flowchartComplexities["medium"]
	}
	guidance, ok := flowchartDifficulty[level]
	if !ok {
		guidance = flowchartDifficulty["beginner"]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate an educational ASCII flowchart about: %q\n\n", topic))
	sb.WriteString("GRADE/LEVEL: " + gradeLevel + "\n")
	sb.WriteString("BOARD: " + board + "\n")
	sb.WriteString("COMPLEXITY: " + complexityInstruction + "\n\n")

	sb.WriteString("WRITING STYLE:\n" + guidance + "\n\n")

	sb.WriteString("RULES:\n")
	sb.WriteString("- Use ASCII art with simple text boxes\n")
	sb.WriteString("- Show clear flow with arrows\n")
	sb.WriteString("- Include START and END boxes\n")
	sb.WriteString("- Use [DECISION] labels for conditionals\n")
	sb.WriteString(fmt.Sprintf("- Make each step clear and understandable for %s\n", gradeLevel))
	sb.WriteString(fmt.Sprintf("- Use appropriate technical depth for %s curriculum\n", board))
	sb.WriteString("- Add brief descriptions for each step\n")
	sb.WriteString("- Keep layout clean and readable\n\n")

	sb.WriteString("FORMAT:\n")
	sb.WriteString("Start with START, flow through the main steps, show decisions with ")
	sb.WriteString("YES/NO branches, and end with END.\n")

	return sb.String()
}
