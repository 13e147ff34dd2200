package handlers

import (
	"buglens/internal/domain"
)

// mapOrganizationToAPI конвертирует domain.Organization в API response
func mapOrganizationToAPI(org *domain.Organization) map[string]interface{} {
	members := make([]map[string]interface{}, len(org.Members))
	for i, m := range org.Members {
		members[i] = mapMemberToAPI(&m)
	}

	return map[string]interface{}{
		"org_id":     org.ID,
		"name":       org.Name,
		"slug":       org.Slug,
		"members":    members,
		"created_at": org.CreatedAt,
	}
}

// mapMemberToAPI конвертирует domain.Member в API response
func mapMemberToAPI(m *domain.Member) map[string]interface{} {
	return map[string]interface{}{
		"org_id":    m.OrgID,
		"user_id":   m.UserID,
		"username":  m.Username,
		"email":     m.Email,
		"role":      string(m.Role),
		"is_active": m.IsActive,
	}
}

// mapInvitationToAPI конвертирует domain.Invitation в API response.
// Токен наружу не отдаётся, он уходит только в пригласительном письме.
func mapInvitationToAPI(inv *domain.Invitation) map[string]interface{} {
	return map[string]interface{}{
		"invitation_id": inv.ID,
		"org_id":        inv.OrgID,
		"email":         inv.Email,
		"role":          string(inv.Role),
		"status":        string(inv.Status),
		"expires_at":    inv.ExpiresAt,
		"created_at":    inv.CreatedAt,
	}
}

// mapProjectToAPI конвертирует domain.Project в API response
func mapProjectToAPI(p *domain.Project) map[string]interface{} {
	return map[string]interface{}{
		"project_id":  p.ID,
		"org_id":      p.OrgID,
		"name":        p.Name,
		"key":         p.Key,
		"description": p.Description,
		"archived":    p.Archived,
		"created_at":  p.CreatedAt,
	}
}

// mapModuleToAPI конвертирует domain.Module в API response
func mapModuleToAPI(m *domain.Module) map[string]interface{} {
	return map[string]interface{}{
		"module_id":   m.ID,
		"project_id":  m.ProjectID,
		"name":        m.Name,
		"description": m.Description,
		"sort_order":  m.SortOrder,
	}
}

// mapTestCaseToAPI конвертирует domain.TestCase в API response
func mapTestCaseToAPI(tc *domain.TestCase) map[string]interface{} {
	steps := make([]map[string]interface{}, len(tc.Steps))
	for i, step := range tc.Steps {
		steps[i] = map[string]interface{}{
			"action":   step.Action,
			"expected": step.Expected,
		}
	}

	return map[string]interface{}{
		"test_case_id":    tc.ID,
		"module_id":       tc.ModuleID,
		"title":           tc.Title,
		"description":     tc.Description,
		"steps":           steps,
		"expected_result": tc.ExpectedResult,
		"priority":        string(tc.Priority),
		"status":          string(tc.Status),
		"created_at":      tc.CreatedAt,
		"updated_at":      tc.UpdatedAt,
	}
}

// mapBugToAPI конвертирует domain.Bug в API response
func mapBugToAPI(bug *domain.Bug) map[string]interface{} {
	links := make([]map[string]interface{}, len(bug.ExternalLinks))
	for i, link := range bug.ExternalLinks {
		links[i] = map[string]interface{}{
			"provider":     string(link.Provider),
			"external_id":  link.ExternalID,
			"external_key": link.ExternalKey,
			"external_url": link.ExternalURL,
		}
	}

	return map[string]interface{}{
		"bug_id":         bug.ID,
		"project_id":     bug.ProjectID,
		"module_id":      bug.ModuleID,
		"test_case_id":   bug.TestCaseID,
		"title":          bug.Title,
		"description":    bug.Description,
		"severity":       string(bug.Severity),
		"priority":       string(bug.Priority),
		"status":         string(bug.Status),
		"reported_by":    bug.ReportedBy,
		"assigned_to":    bug.AssignedTo,
		"external_links": links,
		"created_at":     bug.CreatedAt,
		"updated_at":     bug.UpdatedAt,
		"resolved_at":    bug.ResolvedAt,
	}
}

// mapBugDetailToAPI конвертирует domain.BugDetail в API response
func mapBugDetailToAPI(detail *domain.BugDetail) map[string]interface{} {
	out := mapBugToAPI(&detail.Bug)

	screenshots := make([]map[string]interface{}, len(detail.Screenshots))
	for i := range detail.Screenshots {
		screenshots[i] = mapScreenshotToAPI(&detail.Screenshots[i])
	}
	comments := make([]map[string]interface{}, len(detail.Comments))
	for i := range detail.Comments {
		comments[i] = mapCommentToAPI(&detail.Comments[i])
	}

	out["screenshots"] = screenshots
	out["comments"] = comments
	return out
}

// mapBugShortToAPI конвертирует domain.BugShort в API response
func mapBugShortToAPI(bug domain.BugShort) map[string]interface{} {
	return map[string]interface{}{
		"bug_id":      bug.ID,
		"title":       bug.Title,
		"severity":    string(bug.Severity),
		"priority":    string(bug.Priority),
		"status":      string(bug.Status),
		"assigned_to": bug.AssignedTo,
	}
}

// mapScreenshotToAPI конвертирует domain.Screenshot в API response
func mapScreenshotToAPI(shot *domain.Screenshot) map[string]interface{} {
	annotations := make([]map[string]interface{}, len(shot.Annotations))
	for i, a := range shot.Annotations {
		annotations[i] = mapAnnotationToAPI(&a)
	}

	return map[string]interface{}{
		"screenshot_id": shot.ID,
		"bug_id":        shot.BugID,
		"file_name":     shot.FileName,
		"content_type":  shot.ContentType,
		"width":         shot.Width,
		"height":        shot.Height,
		"uploaded_by":   shot.UploadedBy,
		"annotations":   annotations,
		"created_at":    shot.CreatedAt,
	}
}

// mapAnnotationToAPI конвертирует domain.Annotation в API response
func mapAnnotationToAPI(a *domain.Annotation) map[string]interface{} {
	return map[string]interface{}{
		"annotation_id": a.ID,
		"screenshot_id": a.ScreenshotID,
		"kind":          string(a.Kind),
		"geometry":      a.Geometry,
		"color":         a.Color,
		"stroke_width":  a.StrokeWidth,
		"created_by":    a.CreatedBy,
	}
}

// mapCommentToAPI конвертирует domain.Comment в API response
func mapCommentToAPI(comment *domain.Comment) map[string]interface{} {
	return map[string]interface{}{
		"comment_id": comment.ID,
		"bug_id":     comment.BugID,
		"author_id":  comment.AuthorID,
		"body":       comment.Body,
		"created_at": comment.CreatedAt,
		"edited_at":  comment.EditedAt,
	}
}

// mapNotificationToAPI конвертирует domain.Notification в API response
func mapNotificationToAPI(n *domain.Notification) map[string]interface{} {
	return map[string]interface{}{
		"notification_id": n.ID,
		"org_id":          n.OrgID,
		"kind":            string(n.Kind),
		"payload":         n.Payload,
		"read":            n.Read,
		"created_at":      n.CreatedAt,
	}
}

// mapIntegrationToAPI конвертирует domain.Integration в API response.
// Реквизиты доступа наружу не отдаются.
func mapIntegrationToAPI(integ *domain.Integration) map[string]interface{} {
	return map[string]interface{}{
		"integration_id": integ.ID,
		"org_id":         integ.OrgID,
		"provider":       string(integ.Provider),
		"field_mapping":  integ.FieldMapping,
		"active":         integ.Active,
		"created_at":     integ.CreatedAt,
	}
}

// mapExportJobToAPI конвертирует domain.ExportJob в API response
func mapExportJobToAPI(job *domain.ExportJob) map[string]interface{} {
	return map[string]interface{}{
		"job_id":      job.ID,
		"project_id":  job.ProjectID,
		"entity":      string(job.Entity),
		"format":      string(job.Format),
		"status":      string(job.Status),
		"file_name":   job.FileName,
		"error":       job.Error,
		"created_at":  job.CreatedAt,
		"finished_at": job.FinishedAt,
	}
}
