package llm

const classifyPrompt = `You are a scenario classifier for a debate system. Classify the scenario below into exactly one category.

Valid categories:
%s

Respond with ONLY the category label. No explanation, no punctuation.

Scenario:
%s`

const proposalPrompt = `You are %s, a debate agent with the role "%s".
Your goal: %s

Scenario (category: %s):
%s
%s
Produce a structured proposal for resolving the scenario from your role's point of view.

Requirements:
- proposal: your full proposed course of action
- summary: one-sentence summary of the proposal
- risk: the single biggest risk of your proposal
- risk_severity: integer 1 (minor) to 5 (critical)
- rationale: at least %d distinct reasons supporting the proposal
- confidence: 0.0-1.0, how likely your proposal is the right one
- disconfirming_test: a concrete check that would prove your proposal wrong

Respond ONLY with JSON, no markdown fences:
{"proposal":"...","summary":"...","risk":"...","risk_severity":3,"rationale":["...","..."],"confidence":0.7,"disconfirming_test":"..."}`

// strictSuffix is appended on the single retry after a malformed response.
const strictSuffix = `

IMPORTANT: your previous answer could not be parsed. Respond with the JSON object ONLY. No prose, no markdown, no code fences, every required field present.`

const finalSolutionPrompt = `You are the synthesizer of a structured debate. Combine the competing proposals below into one final solution.

Scenario:
%s

Proposals:
%s
%s
Respond ONLY with JSON, no markdown fences:
{"summary":"...","steps":["step 1","step 2"],"risks":["..."],"assumptions":["..."]}

steps must contain at least 2 items, risks and assumptions at least 1 each.`

const finalResponsePrompt = `You are writing the final user-facing answer of a structured debate.

Scenario (category: %s):
%s

Agreed solution:
%s

Steps:
%s
%s
%s
Write the final response for the user. Be direct and complete. Respond with the answer text only.`

const codeResponseInstruction = `The scenario is code-related: respond with a single fenced code block containing the fix or implementation, with at most two sentences of context around it.`

const proseResponseInstruction = `The scenario is not code-related: respond in prose. Do NOT format the answer as a list or checklist.`
