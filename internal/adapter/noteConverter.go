package adapter

import (
	"time"

	"github.com/tutoragent/NotesAPI/internal/api"
	"github.com/tutoragent/NotesAPI/internal/domain/noteModel"
)

func ToNoteInfoResponses(notes []noteModel.NoteInfo) []api.NoteInfoResponse {
	out := make([]api.NoteInfoResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, api.NoteInfoResponse{
			FileName:   note.FileName,
			UploadTime: note.UploadTime,
			ChunkCount: note.ChunkCount,
		})
	}
	return out
}

func ToQueryResponse(answer string, queryType noteModel.QueryType) api.QueryResponse {
	return api.QueryResponse{
		Success:   true,
		Response:  answer,
		QueryType: string(queryType),
	}
}

func ToUploadResponse(fileName string, result noteModel.IngestResult) api.UploadResponse {
	message := "Successfully uploaded and processed " + fileName
	if result.Deduplicated {
		message = "File " + fileName + " content unchanged, embeddings reused"
	}
	return api.UploadResponse{
		Success:       true,
		Message:       message,
		DocumentCount: result.ChunkCount,
		Deduplicated:  result.Deduplicated,
	}
}

func ToDeleteResponse(message string, fileName string) api.DeleteNotesResponse {
	return api.DeleteNotesResponse{
		Success:   true,
		Message:   message,
		FileName:  fileName,
		Timestamp: time.Now(),
	}
}

func BadRequest(code int, detail string) api.ErrorResponse {
	return api.ErrorResponse{
		Success: false,
		Code:    code,
		Detail:  detail,
	}
}
