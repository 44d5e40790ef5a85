package generator

const generatePromptTemplate = `You are an expert software developer. Generate clean, well-documented and efficient code based on the user's requirements. Follow best practices for the target language.
Target language: %s

Generate code for the following requirement: %s

ONLY output the raw source code itself, without any extra commentary, introductory text, or markdown formatting like backticks.`

const generateWithContextPromptTemplate = `You are an expert software developer. Generate clean, well-documented and efficient code based on the user's requirements. Follow best practices for the target language.
Target language: %s

Here is reference material provided by the user:
--- REFERENCE START ---
%s
--- REFERENCE END ---

Generate code for the following requirement: %s

ONLY output the raw source code itself, without any extra commentary, introductory text, or markdown formatting like backticks.`

const explainPromptTemplate = `You are an expert software developer and technical writer.
Explain the given code in clear, understandable language. Break down complex concepts and describe what each part does.

Explain this code:

%s`

const reviewPromptTemplate = `You are an expert code reviewer. Review the given code and provide constructive feedback including:
1. Code quality issues
2. Performance improvements
3. Security concerns
4. Best practice violations
5. Suggestions for improvement

Review this code:

%s`

const completePromptTemplate = `You are an expert software developer. Complete the given partial code following the established patterns and best practices. Ensure the completion is syntactically correct and logically sound.

Complete this code:

%s`

const completeWithContextPromptTemplate = `You are an expert software developer. Complete the given partial code following the established patterns and best practices. Ensure the completion is syntactically correct and logically sound.

Complete this code:

%s

Context: %s`

const refactorPromptTemplate = `You are an expert in code refactoring. Refactor the given code according to the specified goal while maintaining functionality. Ensure the refactored code is clean, efficient, and follows best practices.

Refactor this code with goal: %s

Code:
%s`

const testsPromptTemplate = `You are an expert in test-driven development. Generate comprehensive unit tests for the given code using %s. Include edge cases, error conditions, and ensure good test coverage.

Generate %s tests for this code:

%s`

const projectComponentPromptTemplate = `Generate the %s component for a project called '%s'.
Project description: %s
Target language: %s

ONLY output the raw file content itself, without any extra commentary, introductory text, or markdown formatting like backticks.`
