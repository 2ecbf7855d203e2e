package assistant

import "fmt"

// classifyPromptTemplate asks the model for exactly one intent label. The
// examples pin down the boundary between small talk and factual lookup.
const classifyPromptTemplate = `Analyze the following user query and classify its intent.
Respond with exactly one word: "NORMAL_CHAT" for greetings, pleasantries, or simple conversational questions, or "INFORMATION_SEEKING" for questions that require factual lookup or detailed explanation.

Examples:
User: Hi -> NORMAL_CHAT
User: How are you? -> NORMAL_CHAT
User: Tell me a joke -> NORMAL_CHAT
User: What is data science? -> INFORMATION_SEEKING
User: Who is the president of France? -> INFORMATION_SEEKING
User: Explain quantum physics -> INFORMATION_SEEKING
User: Good morning -> NORMAL_CHAT
User: what is car -> INFORMATION_SEEKING
User: tell me something about AI -> INFORMATION_SEEKING
User: What's the weather like? -> INFORMATION_SEEKING

User: %s ->`

// InsufficientContextSentence is the literal sentence the grounding prompt
// instructs the model to emit when the supplied context cannot answer the
// question. Exported so callers and tests can recognize it.
const InsufficientContextSentence = "Based on the provided information, I cannot give a precise answer to that question. The context does not contain sufficient details."

const groundedPromptTemplate = `You are a highly knowledgeable and concise AI assistant. Your primary goal is to answer the user's question accurately and directly, *solely* using the information provided below.

**Strict Instructions:**
1.  **Do NOT use any external knowledge.** Your response must be derived *only* from the "Provided Information."
2.  **Be Concise:** Get straight to the point.
3.  **If Insufficient:** If the "Provided Information" does not contain enough detail to answer the question, clearly state: "` + InsufficientContextSentence + `" Do NOT try to guess or invent information.
4.  **No Extraneous Text:** Do not add conversational fillers beyond a direct answer or the "Insufficient" statement.

Provided Information:
` + "```" + `
%s
` + "```" + `

User Question: %s
Answer:`

func classifyPrompt(query string) string {
	return fmt.Sprintf(classifyPromptTemplate, query)
}

func groundedPrompt(contextText, question string) string {
	return fmt.Sprintf(groundedPromptTemplate, contextText, question)
}

func plainPrompt(question string) string {
	return fmt.Sprintf("User Question: %s", question)
}
