package lf

import "go.uber.org/zap"

const (
	FieldModule     = "module"
	FieldRequestID  = "request_id"
	FieldStudentID  = "student_id"
	FieldName       = "name"
	FieldDepartment = "department"
	FieldRollNo     = "rollno"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func RequestID(id string) zap.Field {
	return zap.String(FieldRequestID, id)
}

func StudentID(id uint) zap.Field {
	return zap.Uint(FieldStudentID, id)
}

func Name(name string) zap.Field {
	return zap.String(FieldName, name)
}

func Department(department string) zap.Field {
	return zap.String(FieldDepartment, department)
}

func RollNo(rollno int) zap.Field {
	return zap.Int(FieldRollNo, rollno)
}
