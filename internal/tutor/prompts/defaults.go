package prompts

import "github.com/tutoragent/NotesAPI/internal/domain/noteModel"

// Built-in templates used when a tenant has not stored an override.
// {query} and {context} are substituted by Render.
var defaultTemplates = map[noteModel.QueryType]string{
	noteModel.QueryTypeReading: `You are helping a student prepare a reading paper from their course notes.

Student request: {query}

Course notes:
{context}

Write a structured reading paper based only on the notes above. Summarize the
key concepts, explain how they connect, and list the points the student should
review further. If the notes do not cover part of the request, say so rather
than inventing material.`,

	noteModel.QueryTypeWriting: `You are helping a student draft a writing paper from their course notes.

Student request: {query}

Course notes:
{context}

Draft a well-organized paper grounded only in the notes above, with an
introduction, body paragraphs developing the main arguments, and a conclusion.
Keep the student's request in focus and do not introduce facts that are not in
the notes.`,
}
