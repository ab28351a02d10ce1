package ai

// Instruction blocks sent as the system message of the completion call.
// BuildInstruction picks one body by mode/length and appends the JSON contract.

const proofreadPrompt = `
1. ROLE
You clean up an automatic speech-to-text transcript of a lab meeting.

2. RULES
Keep the full content. Do NOT summarize, shorten, reorder or drop statements.
Fix only spelling, grammar, punctuation and readability.
Remove filler words and obvious recognition noise.
Keep speaker intent, numbers, names and technical terms exactly.
Answer in the language of the transcript.

3. OUTPUT
Put the corrected full text into "summary".
"action_items" MUST be an empty array.
`

const summaryPromptHead = `
1. ROLE
You write meeting notes from an automatic speech-to-text transcript of a lab meeting.

2. SUMMARY
`

const summaryShort = `Write a very short summary of about 3 lines covering only the key decisions.`

const summaryStandard = `Write a concise summary of the main topics, decisions and open questions.`

const summaryLong = `Write a detailed summary. Cover every topic discussed, the arguments raised,
the decisions taken and the open questions, grouped by topic.`

const summaryPromptTail = `

3. ACTION ITEMS
Extract concrete, actionable items (who does what, by when if stated).
One item per array entry. Do NOT invent owners or deadlines.
If there are none, return an empty array.

4. LANGUAGE
Answer in the language of the transcript.
`

const jsonContract = `
OUTPUT FORMAT (STRICT JSON)
Return ONLY one JSON object, no text outside it:
{
"summary": string,
"action_items": [string]
}
`
